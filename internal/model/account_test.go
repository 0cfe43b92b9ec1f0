package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testAccount() *Account {
	return &Account{
		ID:          1,
		Name:        "Fido",
		UserID:      "fido123",
		Email:       "fido@dog.com",
		PhoneNumber: "555-1212",
		DateJoined:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

// TestSerializeAccount 测试账户序列化，地址按集合顺序嵌套
func TestSerializeAccount(t *testing.T) {
	account := testAccount()
	account.Addresses = append(account.Addresses, &Address{
		ID: 3, AccountID: 1, Name: "home",
		Street: "123 Main St", City: "Anytown", State: "NY", PostalCode: "12345",
	})

	serial := account.Serialize()
	assert.Equal(t, 1, serial["id"])
	assert.Equal(t, "Fido", serial["name"])
	assert.Equal(t, "fido123", serial["userid"])
	assert.Equal(t, "fido@dog.com", serial["email"])
	assert.Equal(t, "555-1212", serial["phone_number"])
	assert.Equal(t, "2024-05-01", serial["date_joined"])

	addresses := serial["addresses"].([]map[string]interface{})
	assert.Len(t, addresses, 1)
	assert.Equal(t, "home", addresses[0]["name"])
}

// TestSerializeAccountWithoutPhone 可选的电话号码序列化为 null
func TestSerializeAccountWithoutPhone(t *testing.T) {
	account := testAccount()
	account.PhoneNumber = ""

	serial := account.Serialize()
	assert.Nil(t, serial["phone_number"])
	assert.Equal(t, []map[string]interface{}{}, serial["addresses"])
}

// TestDeserializeAccount 测试序列化与反序列化往返
func TestDeserializeAccount(t *testing.T) {
	account := testAccount()
	account.Addresses = append(account.Addresses,
		&Address{AccountID: 1, Name: "home", Street: "123 Main St", City: "Anytown", State: "NY", PostalCode: "12345"},
		&Address{AccountID: 1, Name: "work", Street: "456 Oak Ave", City: "Springfield", State: "IL", PostalCode: "62704"},
	)

	restored := &Account{}
	err := restored.Deserialize(account.Serialize())
	assert.NoError(t, err)
	assert.Equal(t, account.Name, restored.Name)
	assert.Equal(t, account.UserID, restored.UserID)
	assert.Equal(t, account.Email, restored.Email)
	assert.Equal(t, account.PhoneNumber, restored.PhoneNumber)
	assert.Equal(t, account.DateJoined, restored.DateJoined)

	// 地址顺序保持不变
	assert.Len(t, restored.Addresses, 2)
	assert.Equal(t, "home", restored.Addresses[0].Name)
	assert.Equal(t, "work", restored.Addresses[1].Name)
}

// TestDeserializeAccountMissingKey 测试缺少必填字段
func TestDeserializeAccountMissingKey(t *testing.T) {
	account := &Account{}

	var validationErr *DataValidationError
	err := account.Deserialize(map[string]interface{}{})
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "missing name")

	// 缺少 userid
	err = account.Deserialize(map[string]interface{}{
		"name":        "Fido",
		"email":       "fido@dog.com",
		"date_joined": "2024-05-01",
	})
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "missing userid")
}

// TestDeserializeAccountBadType 测试非字典输入
func TestDeserializeAccountBadType(t *testing.T) {
	account := &Account{}

	var validationErr *DataValidationError
	err := account.Deserialize([]interface{}{})
	assert.ErrorAs(t, err, &validationErr)

	err = account.Deserialize(nil)
	assert.ErrorAs(t, err, &validationErr)
}

// TestDeserializeAccountOptionalPhone 电话号码缺失时不报错
func TestDeserializeAccountOptionalPhone(t *testing.T) {
	account := &Account{}
	err := account.Deserialize(map[string]interface{}{
		"name":        "Fido",
		"userid":      "fido123",
		"email":       "fido@dog.com",
		"date_joined": "2024-05-01",
	})
	assert.NoError(t, err)
	assert.Equal(t, "", account.PhoneNumber)
}

// TestDeserializeAccountBadDate 测试非法日期
func TestDeserializeAccountBadDate(t *testing.T) {
	account := &Account{}
	err := account.Deserialize(map[string]interface{}{
		"name":        "Fido",
		"userid":      "fido123",
		"email":       "fido@dog.com",
		"date_joined": "05/01/2024",
	})

	var validationErr *DataValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "date_joined")
}

// TestDeserializeAccountBadAddress 嵌套地址的错误向上传播
func TestDeserializeAccountBadAddress(t *testing.T) {
	account := &Account{}
	err := account.Deserialize(map[string]interface{}{
		"name":        "Fido",
		"userid":      "fido123",
		"email":       "fido@dog.com",
		"date_joined": "2024-05-01",
		"addresses":   []interface{}{map[string]interface{}{"name": "home"}},
	})

	var validationErr *DataValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "missing account_id")

	// addresses 不是列表
	err = account.Deserialize(map[string]interface{}{
		"name":        "Fido",
		"userid":      "fido123",
		"email":       "fido@dog.com",
		"date_joined": "2024-05-01",
		"addresses":   "not a list",
	})
	assert.ErrorAs(t, err, &validationErr)
}
