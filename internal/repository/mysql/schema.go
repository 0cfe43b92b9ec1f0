package mysql

import (
	"database/sql"
	"fmt"

	"account-service/internal/util"
)

const createAccountsTable = `
CREATE TABLE accounts (
    id           INT AUTO_INCREMENT PRIMARY KEY,
    name         VARCHAR(64) NOT NULL,
    userid       VARCHAR(32) NOT NULL,
    email        VARCHAR(64) NOT NULL,
    phone_number VARCHAR(32) NULL,
    date_joined  DATE NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

const createAddressesTable = `
CREATE TABLE addresses (
    id          INT AUTO_INCREMENT PRIMARY KEY,
    account_id  INT NOT NULL,
    name        VARCHAR(64),
    street      VARCHAR(64),
    city        VARCHAR(64),
    state       VARCHAR(2),
    postal_code VARCHAR(16),
    CONSTRAINT fk_addresses_account FOREIGN KEY (account_id)
        REFERENCES accounts (id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// RecreateSchema 重建本地数据库表。不要在生产环境使用
func RecreateSchema(db *sql.DB) error {
	util.Logger.Info("开始重建数据库表")

	statements := []string{
		`DROP TABLE IF EXISTS addresses`,
		`DROP TABLE IF EXISTS accounts`,
		createAccountsTable,
		createAddressesTable,
	}
	for _, statement := range statements {
		if _, err := db.Exec(statement); err != nil {
			return fmt.Errorf("failed to recreate schema: %w", err)
		}
	}

	util.Logger.Info("数据库表重建完成")
	return nil
}
