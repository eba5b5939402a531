package tuplespace

import (
	"strings"
	"testing"
)

func TestBuildFilename_RoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		seq    string
		rand   string
		expiry int64
	}{
		{"job", "", "", 0},
		{"job", "00000001", "", 0},
		{"job", "", "abcd1234", 0},
		{"job", "00000042", "deadbeef", 0},
		{"job", "", "", 1700000000},
		{"job", "00000042", "deadbeef", 1700000000},
	}

	for _, c := range cases {
		filename := buildFilename(c.name, c.seq, c.rand, c.expiry)
		got, ok := parseTuple(filename)
		if !ok {
			t.Fatalf("parseTuple(%q) failed to parse", filename)
		}
		if got.name != c.name {
			t.Errorf("filename %q: name = %q, want %q", filename, got.name, c.name)
		}
		wantExp := c.expiry != 0
		if got.hasExp != wantExp {
			t.Errorf("filename %q: hasExp = %v, want %v", filename, got.hasExp, wantExp)
		}
		if wantExp && got.expiry != c.expiry {
			t.Errorf("filename %q: expiry = %d, want %d", filename, got.expiry, c.expiry)
		}
	}
}

func TestParseTuple_RejectsEnginePrivateFiles(t *testing.T) {
	rejects := []string{
		"",
		".jobname.seq",
		".jobname.seq.lock",
		"job-00000001.tmp.1234.abcdef12",
		".hidden",
	}
	for _, name := range rejects {
		if _, ok := parseTuple(name); ok {
			t.Errorf("parseTuple(%q) should have been rejected", name)
		}
	}
}

func TestParseTuple_RejectsMalformedTokens(t *testing.T) {
	rejects := []string{
		"job-abc",        // not 8 digits, not 8 hex
		"job-0000001",    // 7 digits
		"job-000000012",  // 9 digits
		"job-deadbee",    // 7 hex chars
		"job-a-b-c",      // too many parts
	}
	for _, name := range rejects {
		if _, ok := parseTuple(name); ok {
			t.Errorf("parseTuple(%q) should have been rejected", name)
		}
	}
}

func TestEncodeSeq_ZeroPadded(t *testing.T) {
	got := encodeSeq(42)
	if got != "00000042" {
		t.Errorf("encodeSeq(42) = %q, want %q", got, "00000042")
	}
	if len(encodeSeq(1)) != seqDigits {
		t.Errorf("encodeSeq(1) length = %d, want %d", len(encodeSeq(1)), seqDigits)
	}
}

func TestNewRand_LooksLikeLowercaseHex(t *testing.T) {
	r := newRand()
	if len(r) != randHex {
		t.Fatalf("newRand() length = %d, want %d", len(r), randHex)
	}
	if strings.ToLower(r) != r {
		t.Errorf("newRand() = %q, want all-lowercase", r)
	}
}

func TestListName(t *testing.T) {
	cases := map[string]string{
		"job":                        "job",
		"job-00000001":               "job",
		"job-00000001-deadbeef":      "job",
		"job.1700000000":             "job",
		"job-00000001.1700000000":    "job",
	}
	for filename, want := range cases {
		if got := listName(filename); got != want {
			t.Errorf("listName(%q) = %q, want %q", filename, got, want)
		}
	}
}
