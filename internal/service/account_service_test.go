package service

import (
	"account-service/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository 是 AccountRepository 接口的模拟实现
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(account *model.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByID(id int) (*model.Account, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAll() ([]*model.Account, error) {
	args := m.Called()
	return args.Get(0).([]*model.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByName(name string) ([]*model.Account, error) {
	args := m.Called(name)
	return args.Get(0).([]*model.Account), args.Error(1)
}

func (m *MockAccountRepository) Update(account *model.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockAccountRepository) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAccountRepository) CreateAddress(address *model.Address) error {
	args := m.Called(address)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAddress(address *model.Address) error {
	args := m.Called(address)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAddress(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAccountRepository) GetAddressByID(id int) (*model.Address, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Address), args.Error(1)
}

func (m *MockAccountRepository) ListAddresses(accountID int) ([]*model.Address, error) {
	args := m.Called(accountID)
	return args.Get(0).([]*model.Address), args.Error(1)
}

// TestCreateAccountResetsID 创建前强制清空id，由持久层重新分配
func TestCreateAccountResetsID(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	service := NewAccountService(mockRepo)

	account := &model.Account{
		ID:     99,
		Name:   "Fido",
		UserID: "fido123",
		Email:  "fido@dog.com",
	}

	mockRepo.On("Create", mock.AnythingOfType("*model.Account")).Run(func(args mock.Arguments) {
		created := args.Get(0).(*model.Account)
		assert.Equal(t, 0, created.ID)
	}).Return(nil)

	err := service.CreateAccount(account)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// TestUpdateAccountRequiresID 未持久化的账户不能更新
func TestUpdateAccountRequiresID(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	service := NewAccountService(mockRepo)

	account := &model.Account{
		Name:       "Fido",
		UserID:     "fido123",
		Email:      "fido@dog.com",
		DateJoined: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	err := service.UpdateAccount(account)

	var validationErr *model.DataValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "empty id")
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

// TestUpdateAccount 已持久化的账户可以更新
func TestUpdateAccount(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	service := NewAccountService(mockRepo)

	account := &model.Account{ID: 1, Name: "Fido", UserID: "fido123", Email: "fido@dog.com"}
	mockRepo.On("Update", account).Return(nil)

	err := service.UpdateAccount(account)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// TestGetAccountByIDNotFound 未找到时透传 nil
func TestGetAccountByIDNotFound(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	service := NewAccountService(mockRepo)

	mockRepo.On("FindByID", 42).Return(nil, nil)

	account, err := service.GetAccountByID(42)
	assert.NoError(t, err)
	assert.Nil(t, account)
	mockRepo.AssertExpectations(t)
}

// TestFindAccountsByName 按名称精确查询
func TestFindAccountsByName(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	service := NewAccountService(mockRepo)

	expected := []*model.Account{{ID: 1, Name: "Fido"}}
	mockRepo.On("FindByName", "Fido").Return(expected, nil)

	accounts, err := service.FindAccountsByName("Fido")
	assert.NoError(t, err)
	assert.Equal(t, expected, accounts)
	mockRepo.AssertExpectations(t)
}

// TestUpdateAddressRequiresID 未持久化的地址不能更新
func TestUpdateAddressRequiresID(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	service := NewAccountService(mockRepo)

	address := &model.Address{AccountID: 1, Name: "home"}
	err := service.UpdateAddress(address)

	var validationErr *model.DataValidationError
	assert.ErrorAs(t, err, &validationErr)
	mockRepo.AssertNotCalled(t, "UpdateAddress", mock.Anything)
}

// TestCreateAddressResetsID 创建地址前强制清空id
func TestCreateAddressResetsID(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	service := NewAccountService(mockRepo)

	address := &model.Address{ID: 55, AccountID: 1, Name: "home"}
	mockRepo.On("CreateAddress", mock.AnythingOfType("*model.Address")).Run(func(args mock.Arguments) {
		created := args.Get(0).(*model.Address)
		assert.Equal(t, 0, created.ID)
	}).Return(nil)

	err := service.CreateAddress(address)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// TestListAddresses 返回账户的地址列表
func TestListAddresses(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	service := NewAccountService(mockRepo)

	expected := []*model.Address{{ID: 11, AccountID: 1, Name: "home"}}
	mockRepo.On("ListAddresses", 1).Return(expected, nil)

	addresses, err := service.ListAddresses(1)
	assert.NoError(t, err)
	assert.Equal(t, expected, addresses)
	mockRepo.AssertExpectations(t)
}
