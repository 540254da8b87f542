package domain

import "testing"

func patientIdentity(profileID uint) Identity {
	return Identity{UserID: 100, Role: RolePatient, PatientID: &profileID}
}

func TestCanAccessPatient_OwnProfile(t *testing.T) {
	if !CanAccessPatient(patientIdentity(5), 5) {
		t.Fatalf("patient denied access to own profile")
	}
}

func TestCanAccessPatient_OtherPatient(t *testing.T) {
	if CanAccessPatient(patientIdentity(5), 6) {
		t.Fatalf("patient allowed access to another patient's data")
	}
}

func TestCanAccessPatient_BlanketRoles(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleClinician} {
		actor := Identity{UserID: 1, Role: role}
		for _, target := range []uint{1, 5, 999} {
			if !CanAccessPatient(actor, target) {
				t.Errorf("role %s denied access to patient %d", role, target)
			}
		}
	}
}

func TestCanAccessPatient_PatientWithoutProfile(t *testing.T) {
	actor := Identity{UserID: 100, Role: RolePatient, PatientID: nil}
	if CanAccessPatient(actor, 5) {
		t.Fatalf("patient without a linked profile allowed access")
	}
}

func TestCanAccessPatient_UnknownRole(t *testing.T) {
	actor := Identity{UserID: 100, Role: Role("intern")}
	if CanAccessPatient(actor, 5) {
		t.Fatalf("unknown role allowed access")
	}
}

func TestRole_Valid(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleClinician, RolePatient} {
		if !role.Valid() {
			t.Errorf("role %s reported invalid", role)
		}
	}
	if Role("root").Valid() {
		t.Errorf("unknown role reported valid")
	}
}
