package account

import (
	"account-service/internal/errors"
	"account-service/internal/model"
	"account-service/internal/service"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AccountHandler 处理账户及其地址的 HTTP 请求
type AccountHandler struct {
	accountService service.AccountServiceInterface
}

// NewAccountHandler 创建一个新的 AccountHandler 实例
func NewAccountHandler(accountService service.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService}
}

// Index 返回服务的基本信息
func (h *AccountHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Account REST API Service",
		"version": "1.0",
		"paths":   "/accounts",
	})
}

// ListAccounts 返回账户列表，支持 ?name= 精确过滤
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	var accounts []*model.Account
	var err error

	name := c.Query("name")
	if name != "" {
		accounts, err = h.accountService.FindAccountsByName(name)
	} else {
		accounts, err = h.accountService.ListAccounts()
	}
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "获取账户列表失败", err))
		return
	}

	results := make([]map[string]interface{}, 0, len(accounts))
	for _, account := range accounts {
		results = append(results, account.Serialize())
	}
	c.JSON(http.StatusOK, results)
}

// GetAccount 通过ID返回单个账户
func (h *AccountHandler) GetAccount(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的账户ID", err))
		return
	}

	account, err := h.accountService.GetAccountByID(id)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "查询账户失败", err))
		return
	}
	if account == nil {
		errors.HandleError(c, errors.New(errors.ErrAccountNotFound,
			fmt.Sprintf("Account with id '%d' could not be found.", id)))
		return
	}

	c.JSON(http.StatusOK, account.Serialize())
}

// CreateAccount 创建新账户
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var body interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的账户数据", err))
		return
	}

	account := &model.Account{}
	if err := account.Deserialize(body); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的账户数据", err))
		return
	}

	if err := h.accountService.CreateAccount(account); err != nil {
		handleServiceError(c, err, "创建账户失败")
		return
	}

	c.Header("Location", fmt.Sprintf("/accounts/%d", account.ID))
	c.JSON(http.StatusCreated, account.Serialize())
}

// UpdateAccount 更新已存在的账户
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的账户ID", err))
		return
	}

	account, err := h.accountService.GetAccountByID(id)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "查询账户失败", err))
		return
	}
	if account == nil {
		errors.HandleError(c, errors.New(errors.ErrAccountNotFound,
			fmt.Sprintf("Account with id '%d' was not found.", id)))
		return
	}

	var body interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的账户数据", err))
		return
	}
	if err := account.Deserialize(body); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的账户数据", err))
		return
	}

	account.ID = id
	if err := h.accountService.UpdateAccount(account); err != nil {
		handleServiceError(c, err, "更新账户失败")
		return
	}

	c.JSON(http.StatusOK, account.Serialize())
}

// DeleteAccount 删除账户，重复删除同样返回 204
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的账户ID", err))
		return
	}

	account, err := h.accountService.GetAccountByID(id)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "查询账户失败", err))
		return
	}
	if account != nil {
		if err := h.accountService.DeleteAccount(id); err != nil {
			handleServiceError(c, err, "删除账户失败")
			return
		}
	}

	c.Status(http.StatusNoContent)
}

// handleServiceError 区分数据校验错误和其他持久层错误
func handleServiceError(c *gin.Context, err error, message string) {
	var validationErr *model.DataValidationError
	if stderrors.As(err, &validationErr) {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, message, err))
		return
	}
	errors.HandleError(c, errors.Wrap(errors.ErrDatabase, message, err))
}
