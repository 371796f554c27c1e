package auth

import "testing"

func TestPrincipal_CanAccessPartner(t *testing.T) {
	admin := Principal{Role: RoleSuperAdmin}
	user := Principal{Role: RolePartnerUser, PartnerCode: "AWS07"}
	orphan := Principal{Role: RolePartnerUser}

	if !admin.CanAccessPartner("ANY") {
		t.Fatal("super admin must reach every partner")
	}
	if !user.CanAccessPartner("AWS07") || user.CanAccessPartner("LSP42") {
		t.Fatal("partner user scope wrong")
	}
	if orphan.CanAccessPartner("") {
		t.Fatal("user without partner must not match empty code")
	}
}

func TestRole_Valid(t *testing.T) {
	if !RoleSuperAdmin.Valid() || !RolePartnerUser.Valid() || Role("admin").Valid() {
		t.Fatal("role validity wrong")
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Ops@Aquaria.COM "); got != "ops@aquaria.com" {
		t.Fatalf("NormalizeEmail = %q", got)
	}
}
