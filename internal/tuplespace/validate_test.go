package tuplespace

import "testing"

func TestValidateOutName(t *testing.T) {
	valid := []string{"job", "Queue1", "a"}
	for _, name := range valid {
		if err := validateOutName(name); err != nil {
			t.Errorf("validateOutName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", ".hidden", "has-dash", "has.dot", "has/slash"}
	for _, name := range invalid {
		if err := validateOutName(name); err == nil {
			t.Errorf("validateOutName(%q) should have failed", name)
		}
	}
}

func TestValidatePattern_AllowsTrailingStar(t *testing.T) {
	if err := validatePattern("job*"); err != nil {
		t.Errorf("validatePattern(job*) = %v, want nil", err)
	}
	if err := validatePattern("*"); err == nil {
		t.Error("validatePattern(*) should fail: empty base after stripping the wildcard")
	}
	if err := validatePattern("job-name*"); err == nil {
		t.Error("validatePattern(job-name*) should fail: '-' is still reserved under the base")
	}
}
