package mysql

import (
	"account-service/internal/model"
	"account-service/internal/util"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	insertAccountQuery = `INSERT INTO accounts (name, userid, email, phone_number, date_joined)
              VALUES (?, ?, ?, ?, ?)`
	selectAccountQuery = `SELECT id, name, userid, email, phone_number, date_joined
              FROM accounts`
	updateAccountQuery = `UPDATE accounts
              SET name = ?, userid = ?, email = ?, phone_number = ?, date_joined = ?
              WHERE id = ?`
)

// accountRepository 实现了 AccountRepository 接口
type accountRepository struct {
	db *sql.DB
}

// NewAccountRepository 创建一个新的 accountRepository 实例
func NewAccountRepository(db *sql.DB) *accountRepository {
	return &accountRepository{db}
}

// Create 创建一个新账户，并在同一事务中写入其全部地址
func (r *accountRepository) Create(account *model.Account) error {
	util.Logger.Info("尝试创建新账户", zap.String("name", account.Name))

	// id 必须为空才能生成新的主键
	account.ID = 0
	if account.DateJoined.IsZero() {
		account.DateJoined = time.Now()
	}

	tx, err := r.db.Begin()
	if err != nil {
		return model.WrapDataValidationError("create Account failed", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(insertAccountQuery,
		account.Name, account.UserID, account.Email,
		nullableString(account.PhoneNumber), account.DateJoined.Format(model.DateLayout))
	if err != nil {
		util.Logger.Error("创建账户失败", zap.Error(err))
		return model.WrapDataValidationError("create Account failed", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		util.Logger.Error("获取新账户ID失败", zap.Error(err))
		return model.WrapDataValidationError("create Account failed", err)
	}
	account.ID = int(id)

	// 回滚后实体必须回到未持久化状态，事务中途分配的主键全部作废
	discardIDs := func() {
		account.ID = 0
		for _, address := range account.Addresses {
			address.ID = 0
			address.AccountID = 0
		}
	}

	// 按集合顺序写入地址
	for _, address := range account.Addresses {
		address.AccountID = account.ID
		result, err := tx.Exec(insertAddressQuery,
			address.AccountID, address.Name, address.Street,
			address.City, address.State, address.PostalCode)
		if err != nil {
			util.Logger.Error("创建账户地址失败", zap.Error(err), zap.Int("account_id", account.ID))
			discardIDs()
			return model.WrapDataValidationError("create Account failed", err)
		}
		addressID, err := result.LastInsertId()
		if err != nil {
			discardIDs()
			return model.WrapDataValidationError("create Account failed", err)
		}
		address.ID = int(addressID)
	}

	if err := tx.Commit(); err != nil {
		util.Logger.Error("提交事务失败", zap.Error(err))
		discardIDs()
		return model.WrapDataValidationError("create Account failed", err)
	}

	util.Logger.Info("账户创建成功", zap.Int("account_id", account.ID))
	return nil
}

// FindByID 通过ID查找账户，未找到时返回 nil 而不是错误
func (r *accountRepository) FindByID(id int) (*model.Account, error) {
	util.Logger.Info("尝试通过ID查找账户", zap.Int("account_id", id))

	row := r.db.QueryRow(selectAccountQuery+` WHERE id = ?`, id)
	account, err := scanAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		util.Logger.Error("查找账户失败", zap.Error(err), zap.Int("account_id", id))
		return nil, fmt.Errorf("failed to query account: %w", err)
	}

	if err := r.loadAddresses(account); err != nil {
		return nil, err
	}
	return account, nil
}

// FindAll 返回所有账户
func (r *accountRepository) FindAll() ([]*model.Account, error) {
	util.Logger.Info("尝试获取账户列表")
	return r.queryAccounts(selectAccountQuery + ` ORDER BY id`)
}

// FindByName 返回名称完全匹配的所有账户
func (r *accountRepository) FindByName(name string) ([]*model.Account, error) {
	util.Logger.Info("按名称查询账户", zap.String("name", name))
	return r.queryAccounts(selectAccountQuery+` WHERE name = ? ORDER BY id`, name)
}

// Update 更新账户信息，并在同一事务中持久化集合里新追加的地址（id 为 0）
func (r *accountRepository) Update(account *model.Account) error {
	util.Logger.Info("尝试更新账户", zap.Int("account_id", account.ID))

	tx, err := r.db.Begin()
	if err != nil {
		return model.WrapDataValidationError("update Account failed", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(updateAccountQuery,
		account.Name, account.UserID, account.Email,
		nullableString(account.PhoneNumber), account.DateJoined.Format(model.DateLayout),
		account.ID)
	if err != nil {
		util.Logger.Error("更新账户失败", zap.Error(err), zap.Int("account_id", account.ID))
		return model.WrapDataValidationError("update Account failed", err)
	}

	var inserted []*model.Address
	discardIDs := func() {
		for _, address := range inserted {
			address.ID = 0
		}
	}
	for _, address := range account.Addresses {
		if address.ID != 0 {
			continue
		}
		address.AccountID = account.ID
		result, err := tx.Exec(insertAddressQuery,
			address.AccountID, address.Name, address.Street,
			address.City, address.State, address.PostalCode)
		if err != nil {
			util.Logger.Error("更新账户地址失败", zap.Error(err), zap.Int("account_id", account.ID))
			discardIDs()
			return model.WrapDataValidationError("update Account failed", err)
		}
		addressID, err := result.LastInsertId()
		if err != nil {
			discardIDs()
			return model.WrapDataValidationError("update Account failed", err)
		}
		address.ID = int(addressID)
		inserted = append(inserted, address)
	}

	if err := tx.Commit(); err != nil {
		util.Logger.Error("提交事务失败", zap.Error(err))
		discardIDs()
		return model.WrapDataValidationError("update Account failed", err)
	}
	return nil
}

// Delete 删除账户，并在同一事务中级联删除其全部地址
func (r *accountRepository) Delete(id int) error {
	util.Logger.Info("尝试删除账户", zap.Int("account_id", id))

	tx, err := r.db.Begin()
	if err != nil {
		return model.WrapDataValidationError("delete Account failed", err)
	}
	defer tx.Rollback()

	// 先删除所属地址，再删除账户本身
	if _, err := tx.Exec(`DELETE FROM addresses WHERE account_id = ?`, id); err != nil {
		util.Logger.Error("删除账户地址失败", zap.Error(err), zap.Int("account_id", id))
		return model.WrapDataValidationError("delete Account failed", err)
	}
	if _, err := tx.Exec(`DELETE FROM accounts WHERE id = ?`, id); err != nil {
		util.Logger.Error("删除账户失败", zap.Error(err), zap.Int("account_id", id))
		return model.WrapDataValidationError("delete Account failed", err)
	}

	if err := tx.Commit(); err != nil {
		util.Logger.Error("提交事务失败", zap.Error(err))
		return model.WrapDataValidationError("delete Account failed", err)
	}

	util.Logger.Info("账户删除成功", zap.Int("account_id", id))
	return nil
}

// queryAccounts 执行账户查询并为每个账户装载地址
func (r *accountRepository) queryAccounts(query string, args ...interface{}) ([]*model.Account, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	for _, account := range accounts {
		if err := r.loadAddresses(account); err != nil {
			return nil, err
		}
	}
	return accounts, nil
}

// loadAddresses 按插入顺序装载账户的地址集合
func (r *accountRepository) loadAddresses(account *model.Account) error {
	addresses, err := r.ListAddresses(account.ID)
	if err != nil {
		return err
	}
	account.Addresses = addresses
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAccount(row rowScanner) (*model.Account, error) {
	var account model.Account
	var phoneNumber sql.NullString
	err := row.Scan(
		&account.ID, &account.Name, &account.UserID, &account.Email,
		&phoneNumber, &account.DateJoined,
	)
	if err != nil {
		return nil, err
	}
	account.PhoneNumber = phoneNumber.String
	return &account, nil
}

// nullableString 将空字符串映射为 NULL
func nullableString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
