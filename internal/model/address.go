package model

import (
	"account-service/internal/util"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// 注册失败只会发生在签名不匹配时，这里的签名是固定的
	_ = v.RegisterValidation("state_code", util.ValidateStateCode)
	return v
}

// Address 结构体表示账户下的一个地址
type Address struct {
	ID         int    `json:"id"`
	AccountID  int    `json:"account_id"`
	Name       string `json:"name"` // 地址标签，例如 home、work、other
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// Serialize 将地址转换为字典表示
func (a *Address) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":          a.ID,
		"account_id":  a.AccountID,
		"name":        a.Name,
		"street":      a.Street,
		"city":        a.City,
		"state":       a.State,
		"postal_code": a.PostalCode,
	}
}

// Deserialize 从字典填充地址，所有字段均为必填
func (a *Address) Deserialize(data interface{}) error {
	fields, ok := data.(map[string]interface{})
	if !ok {
		return NewDataValidationError(
			fmt.Sprintf("invalid Address: body of request contained bad or no data %T", data))
	}

	accountID, err := requireInt(fields, "Address", "account_id")
	if err != nil {
		return err
	}
	name, err := requireString(fields, "Address", "name")
	if err != nil {
		return err
	}
	street, err := requireString(fields, "Address", "street")
	if err != nil {
		return err
	}
	city, err := requireString(fields, "Address", "city")
	if err != nil {
		return err
	}
	state, err := requireString(fields, "Address", "state")
	if err != nil {
		return err
	}
	postalCode, err := requireString(fields, "Address", "postal_code")
	if err != nil {
		return err
	}
	if err := validate.Var(state, "state_code"); err != nil {
		return WrapDataValidationError("invalid Address: state must be a 2 letter code", err)
	}

	a.AccountID = accountID
	a.Name = name
	a.Street = street
	a.City = city
	a.State = state
	a.PostalCode = postalCode
	return nil
}
