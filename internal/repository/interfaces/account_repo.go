package interfaces

import "account-service/internal/model"

// AccountRepository 接口定义了账户仓库应该实现的方法
type AccountRepository interface {
	Create(account *model.Account) error
	FindByID(id int) (*model.Account, error)
	FindAll() ([]*model.Account, error)
	FindByName(name string) ([]*model.Account, error)
	Update(account *model.Account) error
	Delete(id int) error
	CreateAddress(address *model.Address) error
	UpdateAddress(address *model.Address) error
	DeleteAddress(id int) error
	GetAddressByID(id int) (*model.Address, error)
	ListAddresses(accountID int) ([]*model.Address, error)
}
