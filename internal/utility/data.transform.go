package utility

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransformTagConfig chứa cấu hình được parse từ struct tag `transform`
type TransformTagConfig struct {
	Type     string // Loại transform: str_objectid, str_objectid_ptr, str_objectid_slice, str_time, str_int64, str_bool, str_number
	Format   string // Format cho time converter
	Default  string // Giá trị mặc định
	Optional bool   // Nếu không có giá trị thì bỏ qua
	Required bool   // Bắt buộc phải có giá trị
	MapTo    string // Map sang field khác trong Model (ví dụ: map=CenterID)
}

// ParseTransformTag parse tag transform thành config.
// Format: "[type][,format=<value>][,default=<value>][,map=<field>][,optional|required]"
// Ví dụ:
//   - transform:"str_objectid" - Convert string → primitive.ObjectID
//   - transform:"str_objectid_ptr" - Convert string → *primitive.ObjectID
//   - transform:"str_time,format=2006-01-02" - Convert string → int64 timestamp
//   - transform:"str_objectid,map=CenterID" - Convert và gán vào field CenterID của Model
func ParseTransformTag(tag string) (*TransformTagConfig, error) {
	config := &TransformTagConfig{
		Format: "2006-01-02T15:04:05",
	}

	if tag == "" {
		return config, nil
	}

	parts := strings.Split(tag, ",")
	typeStr := strings.TrimSpace(parts[0])
	if typeStr != "" {
		config.Type = typeStr
	}

	for i := 1; i < len(parts); i++ {
		part := strings.TrimSpace(parts[i])
		if part == "" {
			continue
		}
		if part == "optional" {
			config.Optional = true
			continue
		}
		if part == "required" {
			config.Required = true
			continue
		}
		if strings.Contains(part, "=") {
			kv := strings.SplitN(part, "=", 2)
			if len(kv) != 2 {
				continue
			}
			key := strings.TrimSpace(kv[0])
			value := strings.TrimSpace(kv[1])
			switch key {
			case "format":
				config.Format = value
			case "default":
				config.Default = value
			case "map":
				config.MapTo = value
			}
		}
	}

	return config, nil
}

// TransformFieldValue transform giá trị từ DTO field sang Model field theo config
func TransformFieldValue(value interface{}, config *TransformTagConfig, targetFieldType reflect.Type) (interface{}, error) {
	if value == nil {
		if config.Default != "" {
			return applyTransform(config.Default, config, targetFieldType)
		}
		if config.Required {
			return nil, fmt.Errorf("field là required nhưng không có giá trị")
		}
		return nil, nil
	}

	// Chuỗi rỗng coi như không có giá trị
	if strValue, ok := value.(string); ok && strValue == "" {
		if config.Default != "" {
			return applyTransform(config.Default, config, targetFieldType)
		}
		if config.Required {
			return nil, fmt.Errorf("field là required nhưng giá trị rỗng")
		}
		return nil, nil
	}

	return applyTransform(value, config, targetFieldType)
}

// applyTransform apply transform type cho value
func applyTransform(value interface{}, config *TransformTagConfig, targetFieldType reflect.Type) (interface{}, error) {
	switch config.Type {
	case "str_objectid":
		return transformToObjectID(value)
	case "str_objectid_ptr":
		return transformToObjectIDPtr(value)
	case "str_objectid_slice":
		return transformToObjectIDSlice(value)
	case "str_time":
		return transformToTime(value, config.Format)
	case "str_number":
		return transformToNumber(value)
	case "str_int64":
		return transformToInt64(value)
	case "str_bool":
		return transformToBool(value)
	default:
		// Không transform hoặc type không hợp lệ, trả về giá trị gốc
		return value, nil
	}
}

func transformToObjectID(value interface{}) (primitive.ObjectID, error) {
	if value == nil {
		return primitive.NilObjectID, nil
	}
	strValue, ok := value.(string)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("giá trị không phải là string: %T", value)
	}
	if strValue == "" {
		return primitive.NilObjectID, nil
	}
	objID, err := primitive.ObjectIDFromHex(strValue)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("không thể convert string '%s' sang ObjectID: %w", strValue, err)
	}
	return objID, nil
}

func transformToObjectIDPtr(value interface{}) (*primitive.ObjectID, error) {
	if value == nil {
		return nil, nil
	}
	strValue, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("giá trị không phải là string: %T", value)
	}
	if strValue == "" {
		return nil, nil
	}
	objID, err := primitive.ObjectIDFromHex(strValue)
	if err != nil {
		return nil, fmt.Errorf("không thể convert string '%s' sang ObjectID: %w", strValue, err)
	}
	return &objID, nil
}

func transformToObjectIDSlice(value interface{}) ([]primitive.ObjectID, error) {
	if value == nil {
		return nil, nil
	}
	var strValues []string
	switch v := value.(type) {
	case []string:
		strValues = v
	case []interface{}:
		for _, item := range v {
			strItem, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("phần tử không phải là string: %T", item)
			}
			strValues = append(strValues, strItem)
		}
	default:
		return nil, fmt.Errorf("giá trị không phải là slice string: %T", value)
	}
	result := make([]primitive.ObjectID, 0, len(strValues))
	for _, strValue := range strValues {
		objID, err := primitive.ObjectIDFromHex(strValue)
		if err != nil {
			return nil, fmt.Errorf("không thể convert string '%s' sang ObjectID: %w", strValue, err)
		}
		result = append(result, objID)
	}
	return result, nil
}

func transformToTime(value interface{}, format string) (int64, error) {
	if value == nil {
		return 0, nil
	}
	strValue, ok := value.(string)
	if !ok {
		return 0, fmt.Errorf("giá trị không phải là string: %T", value)
	}
	if strValue == "" {
		return 0, nil
	}
	t, err := time.Parse(format, strValue)
	if err != nil {
		return 0, fmt.Errorf("không thể parse time '%s' với format '%s': %w", strValue, format, err)
	}
	return t.UnixMilli(), nil
}

func transformToNumber(value interface{}) (interface{}, error) {
	if value == nil {
		return nil, nil
	}
	switch v := value.(type) {
	case string:
		if intVal, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intVal, nil
		}
		if floatVal, err := strconv.ParseFloat(v, 64); err == nil {
			return floatVal, nil
		}
		return v, nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		if v == float64(int64(v)) {
			return int64(v), nil
		}
		return v, nil
	default:
		return fmt.Sprintf("%v", value), nil
	}
}

func transformToInt64(value interface{}) (int64, error) {
	if value == nil {
		return 0, nil
	}
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case float32:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("không thể convert %T sang int64", value)
	}
}

func transformToBool(value interface{}) (bool, error) {
	if value == nil {
		return false, nil
	}
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case float64:
		return v != 0, nil
	default:
		return false, fmt.Errorf("không thể convert %T sang bool", value)
	}
}
