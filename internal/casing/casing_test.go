package casing

import "testing"

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"createMetadataAccount": "create_metadata_account",
		"CreateMetadataAccount": "create_metadata_account",
		"already_snake":         "already_snake",
		"ID":                    "id",
	}
	for in, want := range cases {
		if got := ToSnakeCase(in); got != want {
			t.Errorf("ToSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToPascalCase(t *testing.T) {
	cases := map[string]string{
		"create_metadata_account": "CreateMetadataAccount",
		"createMetadataAccount":   "CreateMetadataAccount",
		"User":                    "User",
	}
	for in, want := range cases {
		if got := ToPascalCase(in); got != want {
			t.Errorf("ToPascalCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToShoutySnakeCase(t *testing.T) {
	if got := ToShoutySnakeCase("createMetadataAccount"); got != "CREATE_METADATA_ACCOUNT" {
		t.Errorf("got %q", got)
	}
}

func TestConditionalPascalCase(t *testing.T) {
	if got := ConditionalPascalCase("User"); got != "User" {
		t.Errorf("expected passthrough, got %q", got)
	}
	if got := ConditionalPascalCase("move"); got != "Move_" {
		t.Errorf("expected keyword rename, got %q", got)
	}
	if got := ConditionalPascalCase("bonding_curve"); got != "BondingCurve" {
		t.Errorf("got %q", got)
	}
}
