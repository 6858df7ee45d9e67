package ocr

import "testing"

func TestExtractNumbers(t *testing.T) {
	t.Run("marked six-digit number ranks first", func(t *testing.T) {
		got := Extract("XO SO KIEN THIET\nvé số 123456\n78901 ngẫu nhiên")
		if len(got.Numbers) == 0 || got.Numbers[0] != "123456" {
			t.Fatalf("numbers = %v, want 123456 first", got.Numbers)
		}
	})

	t.Run("confused digits are normalized", func(t *testing.T) {
		// OCR read 120456 as "l2O456".
		got := Extract("số l2O456")
		if len(got.Numbers) == 0 || got.Numbers[0] != "120456" {
			t.Fatalf("numbers = %v, want 120456 first", got.Numbers)
		}
	})

	t.Run("bare six-digit run is found", func(t *testing.T) {
		got := Extract("ĐỒNG THÁP 889246 ngày 15/01/2024")
		if len(got.Numbers) == 0 || got.Numbers[0] != "889246" {
			t.Fatalf("numbers = %v, want 889246 first", got.Numbers)
		}
	})

	t.Run("split groups concatenating to six digits", func(t *testing.T) {
		got := Extract("88 92 46 in hoa van")
		found := false
		for _, n := range got.Numbers {
			if n == "889246" {
				found = true
			}
		}
		if !found {
			t.Fatalf("numbers = %v, want 889246 present", got.Numbers)
		}
	})

	t.Run("six-digit candidates precede shorter runs", func(t *testing.T) {
		got := Extract("246 rồi 889246 rồi 56")
		if len(got.Numbers) < 3 {
			t.Fatalf("numbers = %v", got.Numbers)
		}
		if got.Numbers[0] != "889246" {
			t.Errorf("first = %s, want 889246", got.Numbers[0])
		}
	})
}

func TestExtractDate(t *testing.T) {
	cases := []struct {
		name, text, want string
	}{
		{"slash delimited", "mở thưởng 15/01/2024", "2024-01-15"},
		{"dash delimited", "ngay 05-09-2023", "2023-09-05"},
		{"dot delimited", "1.2.2024", "2024-02-01"},
		{"vietnamese prose", "ngày 15 tháng 1 năm 2024", "2024-01-15"},
		{"two digit year maps to 2000s", "15/01/24", "2024-01-15"},
		{"two digit year above 50 maps to 1900s", "15/01/99", "1999-01-15"},
		{"no date", "vé số kiến thiết", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Extract(tc.text).Date; got != tc.want {
				t.Errorf("Extract(%q).Date = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtractProvince(t *testing.T) {
	cases := []struct {
		name, text, want string
	}{
		{"accented", "XỔ SỐ ĐỒNG THÁP", "dong-thap"},
		{"unaccented", "xo so dong thap", "dong-thap"},
		{"city alias", "TP.HCM", "tphcm"},
		{"saigon alias", "đài Sài Gòn", "tphcm"},
		{"source code", "ket qua xsdn hom nay", "dong-nai"},
		{"northern pool", "miền bắc", "mien-bac"},
		{"unknown", "khong co dai nao", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Extract(tc.text).Province; got != tc.want {
				t.Errorf("Extract(%q).Province = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtractPartialIsNotAnError(t *testing.T) {
	got := Extract("chữ in mờ không đọc được gì")
	if len(got.Numbers) != 0 || got.Date != "" || got.Province != "" {
		t.Errorf("expected empty candidate, got %+v", got)
	}
}
