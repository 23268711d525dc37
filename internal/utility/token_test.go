// Package utility - Test JWT token và hash mật khẩu.
package utility

import "testing"

func TestCreateVerifyToken_RoundTrip(t *testing.T) {
	secret := "test-secret"
	tokenMap, err := CreateToken(secret, "user123", "1a2b", "42")
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}
	tokenString, ok := tokenMap["token"]
	if !ok || tokenString == "" {
		t.Fatal("CreateToken phải trả về map có key token không rỗng")
	}

	claims, err := VerifyToken(secret, tokenString)
	if err != nil {
		t.Fatalf("VerifyToken lỗi với token hợp lệ: %v", err)
	}
	if claims["userId"] != "user123" {
		t.Errorf("Claims userId sai: got %v, want user123", claims["userId"])
	}
}

func TestVerifyToken_SaiSecret(t *testing.T) {
	tokenMap, err := CreateToken("secret-a", "user123", "1a2b", "42")
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}

	if _, err := VerifyToken("secret-b", tokenMap["token"]); err == nil {
		t.Error("VerifyToken với secret sai phải trả về lỗi")
	}
}

func TestVerifyToken_ChuoiRac(t *testing.T) {
	if _, err := VerifyToken("secret", "khong.phai.jwt"); err == nil {
		t.Error("VerifyToken với chuỗi rác phải trả về lỗi")
	}
}

func TestHashComparePassword(t *testing.T) {
	hashed, err := HashPassword("matkhau123")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	if hashed == "matkhau123" {
		t.Error("Hash không được trùng với mật khẩu gốc")
	}
	if !ComparePassword(hashed, "matkhau123") {
		t.Error("ComparePassword phải trả về true với mật khẩu đúng")
	}
	if ComparePassword(hashed, "matkhausai") {
		t.Error("ComparePassword phải trả về false với mật khẩu sai")
	}
}
