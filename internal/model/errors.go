package model

import "fmt"

// DataValidationError 表示反序列化或持久化过程中的数据校验错误
type DataValidationError struct {
	Message string
	Err     error
}

func (e *DataValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DataValidationError) Unwrap() error {
	return e.Err
}

// NewDataValidationError 创建新的数据校验错误
func NewDataValidationError(message string) *DataValidationError {
	return &DataValidationError{Message: message}
}

// WrapDataValidationError 包装底层错误为数据校验错误
func WrapDataValidationError(message string, err error) *DataValidationError {
	return &DataValidationError{Message: message, Err: err}
}

// requireString 从字典中读取必填的字符串字段
func requireString(fields map[string]interface{}, entity, key string) (string, error) {
	raw, ok := fields[key]
	if !ok || raw == nil {
		return "", NewDataValidationError(fmt.Sprintf("invalid %s: missing %s", entity, key))
	}
	value, ok := raw.(string)
	if !ok {
		return "", NewDataValidationError(fmt.Sprintf("invalid %s: %s must be a string", entity, key))
	}
	return value, nil
}

// optionalString 从字典中读取可选的字符串字段，缺失时返回空字符串
func optionalString(fields map[string]interface{}, entity, key string) (string, error) {
	raw, ok := fields[key]
	if !ok || raw == nil {
		return "", nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", NewDataValidationError(fmt.Sprintf("invalid %s: %s must be a string", entity, key))
	}
	return value, nil
}

// requireInt 从字典中读取必填的整数字段。JSON 解码产生 float64，手工构造的字典可能是 int
func requireInt(fields map[string]interface{}, entity, key string) (int, error) {
	raw, ok := fields[key]
	if !ok || raw == nil {
		return 0, NewDataValidationError(fmt.Sprintf("invalid %s: missing %s", entity, key))
	}
	switch value := raw.(type) {
	case float64:
		return int(value), nil
	case int:
		return value, nil
	default:
		return 0, NewDataValidationError(fmt.Sprintf("invalid %s: %s must be an integer", entity, key))
	}
}
