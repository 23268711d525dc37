// Package basesvc - Test chuyển đổi dữ liệu update sang UpdateData.
package basesvc

import (
	"testing"
)

func TestToUpdateData_MapThuong_WrapTrongSet(t *testing.T) {
	update, err := ToUpdateData(map[string]interface{}{"title": "Báo cáo mới"})
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if update.Set == nil {
		t.Fatal("Map thường phải được wrap trong $set")
	}
	if update.Set["title"] != "Báo cáo mới" {
		t.Errorf("Giá trị $set sai: got %v", update.Set["title"])
	}
}

func TestToUpdateData_CoOperator(t *testing.T) {
	data := map[string]interface{}{
		"$set":   map[string]interface{}{"status": "submitted"},
		"$unset": map[string]interface{}{"publishedAt": ""},
		"$push":  map[string]interface{}{"versions": "v1"},
		"$inc":   map[string]interface{}{"metadata.viewCount": 1},
	}

	update, err := ToUpdateData(data)
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if update.Set["status"] != "submitted" {
		t.Errorf("$set không được giữ đúng: got %v", update.Set)
	}
	if _, ok := update.Unset["publishedAt"]; !ok {
		t.Error("$unset không được giữ đúng")
	}
	if _, ok := update.Push["versions"]; !ok {
		t.Error("$push không được giữ đúng")
	}
	if _, ok := update.Inc["metadata.viewCount"]; !ok {
		t.Error("$inc không được giữ đúng")
	}
}

func TestToUpdateData_DaLaUpdateData(t *testing.T) {
	original := &UpdateData{Set: map[string]interface{}{"a": 1}}
	update, err := ToUpdateData(original)
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if update != original {
		t.Error("UpdateData pointer phải được trả về nguyên vẹn")
	}

	byValue, err := ToUpdateData(UpdateData{Set: map[string]interface{}{"b": 2}})
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if byValue.Set["b"] != 2 {
		t.Errorf("UpdateData theo giá trị phải được chuyển thành pointer: got %v", byValue.Set)
	}
}
