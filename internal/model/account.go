package model

import (
	"fmt"
	"time"
)

// DateLayout 是 date_joined 字段的 ISO-8601 日期格式
const DateLayout = "2006-01-02"

// Account 结构体表示账户模型
type Account struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	UserID      string     `json:"userid"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phone_number"` // 电话号码可选
	DateJoined  time.Time  `json:"date_joined"`
	Addresses   []*Address `json:"addresses"` // 按插入顺序保存
}

// Serialize 将账户转换为字典表示，地址按集合顺序嵌套
func (a *Account) Serialize() map[string]interface{} {
	addresses := make([]map[string]interface{}, 0, len(a.Addresses))
	for _, address := range a.Addresses {
		addresses = append(addresses, address.Serialize())
	}

	account := map[string]interface{}{
		"id":           a.ID,
		"name":         a.Name,
		"userid":       a.UserID,
		"email":        a.Email,
		"phone_number": nil,
		"date_joined":  a.DateJoined.Format(DateLayout),
		"addresses":    addresses,
	}
	if a.PhoneNumber != "" {
		account["phone_number"] = a.PhoneNumber
	}
	return account
}

// Deserialize 从字典填充账户。name、userid、email、date_joined 为必填，
// phone_number 可选，addresses 为嵌套地址字典的列表
func (a *Account) Deserialize(data interface{}) error {
	fields, ok := data.(map[string]interface{})
	if !ok {
		return NewDataValidationError(
			fmt.Sprintf("invalid Account: body of request contained bad or no data %T", data))
	}

	name, err := requireString(fields, "Account", "name")
	if err != nil {
		return err
	}
	userID, err := requireString(fields, "Account", "userid")
	if err != nil {
		return err
	}
	email, err := requireString(fields, "Account", "email")
	if err != nil {
		return err
	}
	phoneNumber, err := optionalString(fields, "Account", "phone_number")
	if err != nil {
		return err
	}
	dateRaw, err := requireString(fields, "Account", "date_joined")
	if err != nil {
		return err
	}
	dateJoined, err := time.Parse(DateLayout, dateRaw)
	if err != nil {
		return WrapDataValidationError("invalid Account: date_joined is not a valid date", err)
	}

	a.Name = name
	a.UserID = userID
	a.Email = email
	a.PhoneNumber = phoneNumber
	a.DateJoined = dateJoined

	// 处理嵌套的地址列表。JSON 解码得到 []interface{}，
	// Serialize 的输出是 []map[string]interface{}，两种形态都要接受
	if raw, ok := fields["addresses"]; ok && raw != nil {
		var list []interface{}
		switch entries := raw.(type) {
		case []interface{}:
			list = entries
		case []map[string]interface{}:
			list = make([]interface{}, 0, len(entries))
			for _, entry := range entries {
				list = append(list, entry)
			}
		default:
			return NewDataValidationError("invalid Account: addresses must be a list")
		}
		for _, item := range list {
			address := &Address{}
			if err := address.Deserialize(item); err != nil {
				return err
			}
			a.Addresses = append(a.Addresses, address)
		}
	}

	return nil
}
