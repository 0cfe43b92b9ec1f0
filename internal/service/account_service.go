package service

import (
	"account-service/internal/model"
	"account-service/internal/repository/interfaces"
	"account-service/internal/util"

	"go.uber.org/zap"
)

// AccountServiceInterface 定义账户服务对外暴露的方法
type AccountServiceInterface interface {
	CreateAccount(account *model.Account) error
	GetAccountByID(id int) (*model.Account, error)
	ListAccounts() ([]*model.Account, error)
	FindAccountsByName(name string) ([]*model.Account, error)
	UpdateAccount(account *model.Account) error
	DeleteAccount(id int) error
	CreateAddress(address *model.Address) error
	GetAddressByID(id int) (*model.Address, error)
	ListAddresses(accountID int) ([]*model.Address, error)
	UpdateAddress(address *model.Address) error
	DeleteAddress(id int) error
}

// AccountService 处理与账户相关的业务逻辑
type AccountService struct {
	accountRepo interfaces.AccountRepository
}

// 确保 AccountService 实现了 AccountServiceInterface
var _ AccountServiceInterface = (*AccountService)(nil)

// NewAccountService 创建一个新的 AccountService 实例
func NewAccountService(accountRepo interfaces.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// CreateAccount 创建新账户。id 由持久层分配，这里强制清空
func (s *AccountService) CreateAccount(account *model.Account) error {
	account.ID = 0
	return s.accountRepo.Create(account)
}

// GetAccountByID 通过ID获取账户，未找到时返回 nil
func (s *AccountService) GetAccountByID(id int) (*model.Account, error) {
	return s.accountRepo.FindByID(id)
}

// ListAccounts 返回所有账户
func (s *AccountService) ListAccounts() ([]*model.Account, error) {
	return s.accountRepo.FindAll()
}

// FindAccountsByName 返回名称完全匹配的账户，区分大小写
func (s *AccountService) FindAccountsByName(name string) ([]*model.Account, error) {
	return s.accountRepo.FindByName(name)
}

// UpdateAccount 更新账户。只有已持久化的账户才能更新
func (s *AccountService) UpdateAccount(account *model.Account) error {
	if account.ID == 0 {
		util.Logger.Error("更新账户失败：id为空")
		return model.NewDataValidationError("invalid Account: update called with empty id")
	}
	return s.accountRepo.Update(account)
}

// DeleteAccount 删除账户及其全部地址
func (s *AccountService) DeleteAccount(id int) error {
	return s.accountRepo.Delete(id)
}

// CreateAddress 为账户创建新地址
func (s *AccountService) CreateAddress(address *model.Address) error {
	address.ID = 0
	return s.accountRepo.CreateAddress(address)
}

// GetAddressByID 通过ID获取地址，未找到时返回 nil
func (s *AccountService) GetAddressByID(id int) (*model.Address, error) {
	return s.accountRepo.GetAddressByID(id)
}

// ListAddresses 返回账户的地址列表
func (s *AccountService) ListAddresses(accountID int) ([]*model.Address, error) {
	addresses, err := s.accountRepo.ListAddresses(accountID)
	if err != nil {
		return nil, err
	}
	util.Logger.Info("成功获取账户地址列表",
		zap.Int("account_id", accountID),
		zap.Int("count", len(addresses)))
	return addresses, nil
}

// UpdateAddress 更新地址。只有已持久化的地址才能更新
func (s *AccountService) UpdateAddress(address *model.Address) error {
	if address.ID == 0 {
		util.Logger.Error("更新地址失败：id为空")
		return model.NewDataValidationError("invalid Address: update called with empty id")
	}
	return s.accountRepo.UpdateAddress(address)
}

// DeleteAddress 删除地址
func (s *AccountService) DeleteAddress(id int) error {
	return s.accountRepo.DeleteAddress(id)
}
