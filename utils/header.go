package utils

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// MissingHeader 从 ShouldBindHeader 返回的校验错误中找出第一个缺失的请求头名。
// - obj 为绑定目标 (结构体或其指针)，字段通过 `header:"..."` 标签声明请求头名。
// - 校验错误按结构体字段顺序排列，因此返回的是声明顺序中第一个缺失的请求头。
// - err 不是 validator.ValidationErrors 时返回 false。
func MissingHeader(obj any, err error) (string, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "", false
	}

	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	fieldName := validationErrors[0].StructField()
	if field, ok := t.FieldByName(fieldName); ok {
		if name := field.Tag.Get("header"); name != "" {
			return name, true
		}
	}
	return fieldName, true
}
