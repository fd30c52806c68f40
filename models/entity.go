package models

import (
	"fmt"
	"time"
)

// EntityMeta chứa các trường chung của mọi entity
type EntityMeta struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// Validatable kiểm tra toàn bộ invariant của entity trước khi lưu
type Validatable interface {
	Validate() error
}

// Serializable chuyển entity sang dạng record (map cột -> giá trị)
type Serializable interface {
	ToRecord() map[string]interface{}
}

func recordUint(rec map[string]interface{}, key string) (uint, error) {
	switch v := rec[key].(type) {
	case uint:
		return v, nil
	case int:
		return uint(v), nil
	case int64:
		return uint(v), nil
	case float64:
		return uint(v), nil
	}
	return 0, fmt.Errorf("trường %q không phải là số", key)
}

func recordInt(rec map[string]interface{}, key string) (int, error) {
	switch v := rec[key].(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case float64:
		return int(v), nil
	}
	return 0, fmt.Errorf("trường %q không phải là số", key)
}

func recordFloat(rec map[string]interface{}, key string) (float64, error) {
	switch v := rec[key].(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return 0, fmt.Errorf("trường %q không phải là số", key)
}

func recordString(rec map[string]interface{}, key string) (string, error) {
	if v, ok := rec[key].(string); ok {
		return v, nil
	}
	return "", fmt.Errorf("trường %q không phải là chuỗi", key)
}

func recordBool(rec map[string]interface{}, key string) (bool, error) {
	switch v := rec[key].(type) {
	case bool:
		return v, nil
	case int:
		// sqlite lưu boolean dưới dạng 0/1
		return v != 0, nil
	case int64:
		return v != 0, nil
	}
	return false, fmt.Errorf("trường %q không phải là boolean", key)
}

func recordTime(rec map[string]interface{}, key string) (time.Time, error) {
	switch v := rec[key].(type) {
	case time.Time:
		return v, nil
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, fmt.Errorf("trường %q không đúng định dạng ISO-8601: %v", key, err)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("trường %q không phải là thời gian", key)
}
