package validate

import "testing"

func TestPassword(t *testing.T) {
	cases := map[string]bool{
		"Start#123": true,
		"start#123": false,
		"START#123": false,
		"Start1234": false,
		"S#1a":      false,
	}
	for pw, want := range cases {
		if got := Password(pw); got != want {
			t.Errorf("Password(%q) = %v, want %v", pw, got, want)
		}
	}
}

func TestIDAndPage(t *testing.T) {
	if id, ok := ID(" 42 "); !ok || id != 42 {
		t.Fatalf("ID(42) = %d %v", id, ok)
	}
	for _, bad := range []string{"", "0", "-3", "abc", "1e3"} {
		if _, ok := ID(bad); ok {
			t.Errorf("ID(%q) should fail", bad)
		}
	}
	if Page("3") != 3 || Page("0") != 1 || Page("x") != 1 {
		t.Fatal("Page should default to 1 for bad input")
	}
}

func TestZipEmailTerm(t *testing.T) {
	if _, ok := Zip("12345-6789"); !ok {
		t.Error("ZIP+4 should pass")
	}
	if _, ok := Zip("1234"); ok {
		t.Error("short zip should fail")
	}
	if _, ok := Zip(""); !ok {
		t.Error("empty zip is allowed")
	}
	if _, ok := Email("a@b.co"); !ok {
		t.Error("valid email rejected")
	}
	if _, ok := Email("a@b"); ok {
		t.Error("email without tld accepted")
	}
	long := "abcdefghijabcdefghijabcdefghijabcdefghijabcdefghij-extra"
	if got := Term("  " + long + "  "); len(got) != 50 {
		t.Errorf("Term should cap at 50, got %d", len(got))
	}
}
