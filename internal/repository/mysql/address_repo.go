package mysql

import (
	"account-service/internal/model"
	"account-service/internal/util"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

const (
	insertAddressQuery = `INSERT INTO addresses (account_id, name, street, city, state, postal_code)
              VALUES (?, ?, ?, ?, ?, ?)`
	selectAddressQuery = `SELECT id, account_id, name, street, city, state, postal_code
              FROM addresses`
	updateAddressQuery = `UPDATE addresses
              SET account_id = ?, name = ?, street = ?, city = ?, state = ?, postal_code = ?
              WHERE id = ?`
)

// CreateAddress 为已存在的账户创建一个新地址
func (r *accountRepository) CreateAddress(address *model.Address) error {
	util.Logger.Info("尝试创建新地址", zap.Int("account_id", address.AccountID))

	// 检查所属账户是否存在
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM accounts WHERE id = ?)`,
		address.AccountID).Scan(&exists)
	if err != nil {
		util.Logger.Error("检查账户存在性失败", zap.Error(err), zap.Int("account_id", address.AccountID))
		return model.WrapDataValidationError("create Address failed", err)
	}
	if !exists {
		util.Logger.Error("账户不存在", zap.Int("account_id", address.AccountID))
		return model.NewDataValidationError("invalid Address: account not found")
	}

	address.ID = 0
	result, err := r.db.Exec(insertAddressQuery,
		address.AccountID, address.Name, address.Street,
		address.City, address.State, address.PostalCode)
	if err != nil {
		util.Logger.Error("创建地址失败", zap.Error(err))
		return model.WrapDataValidationError("create Address failed", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		util.Logger.Error("获取新地址ID失败", zap.Error(err))
		return model.WrapDataValidationError("create Address failed", err)
	}
	address.ID = int(id)

	util.Logger.Info("地址创建成功",
		zap.Int("address_id", address.ID),
		zap.Int("account_id", address.AccountID))
	return nil
}

// UpdateAddress 更新地址信息
func (r *accountRepository) UpdateAddress(address *model.Address) error {
	util.Logger.Info("尝试更新地址", zap.Int("address_id", address.ID))

	_, err := r.db.Exec(updateAddressQuery,
		address.AccountID, address.Name, address.Street,
		address.City, address.State, address.PostalCode,
		address.ID)
	if err != nil {
		util.Logger.Error("更新地址失败", zap.Error(err), zap.Int("address_id", address.ID))
		return model.WrapDataValidationError("update Address failed", err)
	}
	return nil
}

// DeleteAddress 删除地址
func (r *accountRepository) DeleteAddress(id int) error {
	util.Logger.Info("尝试删除地址", zap.Int("address_id", id))

	_, err := r.db.Exec(`DELETE FROM addresses WHERE id = ?`, id)
	if err != nil {
		util.Logger.Error("删除地址失败", zap.Error(err), zap.Int("address_id", id))
		return model.WrapDataValidationError("delete Address failed", err)
	}
	return nil
}

// GetAddressByID 通过ID查找地址，未找到时返回 nil 而不是错误
func (r *accountRepository) GetAddressByID(id int) (*model.Address, error) {
	util.Logger.Info("尝试通过ID查找地址", zap.Int("address_id", id))

	row := r.db.QueryRow(selectAddressQuery+` WHERE id = ?`, id)
	address, err := scanAddress(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		util.Logger.Error("查找地址失败", zap.Error(err), zap.Int("address_id", id))
		return nil, fmt.Errorf("failed to query address: %w", err)
	}
	return address, nil
}

// ListAddresses 按插入顺序返回账户的地址列表
func (r *accountRepository) ListAddresses(accountID int) ([]*model.Address, error) {
	rows, err := r.db.Query(selectAddressQuery+` WHERE account_id = ? ORDER BY id`, accountID)
	if err != nil {
		util.Logger.Error("查询账户地址失败", zap.Error(err), zap.Int("account_id", accountID))
		return nil, fmt.Errorf("failed to query addresses: %w", err)
	}
	defer rows.Close()

	var addresses []*model.Address
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate addresses: %w", err)
	}
	return addresses, nil
}

func scanAddress(row rowScanner) (*model.Address, error) {
	var address model.Address
	err := row.Scan(
		&address.ID, &address.AccountID, &address.Name,
		&address.Street, &address.City, &address.State, &address.PostalCode,
	)
	if err != nil {
		return nil, err
	}
	return &address, nil
}
