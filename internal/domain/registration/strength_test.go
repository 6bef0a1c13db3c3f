package registration

import "testing"

func TestPasswordStrength(t *testing.T) {
	cases := []struct {
		password string
		want     int
	}{
		{"", 0},
		{"abc", 1},           // lowercase only, under 8
		{"abcdefgh", 2},      // length 8 + lowercase
		{"abcdefgh1", 3},     // + digit
		{"Abcdefgh1", 4},     // + uppercase
		{"Abcdefgh1!xx", 4},  // capped at 4
		{"ABCDEFGHIJKL", 3},  // 12+ chars, uppercase only
		{"12345678", 2},      // length 8 + digits
	}
	for _, tc := range cases {
		if got := PasswordStrength(tc.password); got != tc.want {
			t.Errorf("PasswordStrength(%q) = %d, want %d", tc.password, got, tc.want)
		}
	}
}

func TestPasswordStrengthLabel(t *testing.T) {
	cases := []struct {
		password string
		want     string
	}{
		{"", ""},
		{"abc", "Too short"},
		{"abcdefgh", "Medium"},
		{"abcdefgh1", "Strong"},
		{"Abcdefgh1!", "Strong"},
	}
	for _, tc := range cases {
		if got := PasswordStrengthLabel(tc.password); got != tc.want {
			t.Errorf("PasswordStrengthLabel(%q) = %q, want %q", tc.password, got, tc.want)
		}
	}
}

func TestPreviewDataURI(t *testing.T) {
	a := Attachment{Filename: "badge.png", ContentType: "image/png", Data: []byte{1, 2, 3}}
	uri := a.PreviewDataURI()
	if uri != "data:image/png;base64,AQID" {
		t.Errorf("uri = %q", uri)
	}

	a.ContentType = ""
	if got := a.PreviewDataURI(); got != "data:application/octet-stream;base64,AQID" {
		t.Errorf("uri = %q", got)
	}
}

func TestDraftFileSlots(t *testing.T) {
	var d Draft
	badge := &Attachment{Filename: "b.png"}

	d.SetFile(SlotSchoolBadge, badge)
	if d.File(SlotSchoolBadge) != badge {
		t.Error("badge slot not set")
	}
	if d.File(SlotAdminPhoto) != nil {
		t.Error("photo slot should be empty")
	}

	d.SetFile(SlotSchoolBadge, nil)
	if d.File(SlotSchoolBadge) != nil {
		t.Error("badge slot not cleared")
	}

	// Unknown slots are ignored.
	d.SetFile("banner", badge)
	if d.File("banner") != nil {
		t.Error("unknown slot should resolve to nil")
	}
}
