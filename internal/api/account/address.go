package account

import (
	"account-service/internal/errors"
	"account-service/internal/model"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListAddresses 返回账户的全部地址
func (h *AccountHandler) ListAddresses(c *gin.Context) {
	accountID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的账户ID", err))
		return
	}

	account, err := h.accountService.GetAccountByID(accountID)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "查询账户失败", err))
		return
	}
	if account == nil {
		errors.HandleError(c, errors.New(errors.ErrAccountNotFound,
			fmt.Sprintf("Account with id '%d' could not be found.", accountID)))
		return
	}

	results := make([]map[string]interface{}, 0, len(account.Addresses))
	for _, address := range account.Addresses {
		results = append(results, address.Serialize())
	}
	c.JSON(http.StatusOK, results)
}

// CreateAddress 在账户下创建新地址
func (h *AccountHandler) CreateAddress(c *gin.Context) {
	accountID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的账户ID", err))
		return
	}

	account, err := h.accountService.GetAccountByID(accountID)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "查询账户失败", err))
		return
	}
	if account == nil {
		errors.HandleError(c, errors.New(errors.ErrAccountNotFound,
			fmt.Sprintf("Account with id '%d' could not be found.", accountID)))
		return
	}

	var body interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的地址数据", err))
		return
	}

	address := &model.Address{}
	if err := address.Deserialize(body); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的地址数据", err))
		return
	}

	// 路径中的账户ID优先于请求体
	address.AccountID = accountID
	if err := h.accountService.CreateAddress(address); err != nil {
		handleServiceError(c, err, "创建地址失败")
		return
	}

	c.JSON(http.StatusCreated, address.Serialize())
}

// GetAddress 返回账户下的单个地址
func (h *AccountHandler) GetAddress(c *gin.Context) {
	addressID, err := strconv.Atoi(c.Param("address_id"))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的地址ID", err))
		return
	}

	address, err := h.accountService.GetAddressByID(addressID)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "查询地址失败", err))
		return
	}
	if address == nil {
		errors.HandleError(c, errors.New(errors.ErrAddressNotFound,
			fmt.Sprintf("Address with id '%d' could not be found.", addressID)))
		return
	}

	c.JSON(http.StatusOK, address.Serialize())
}

// UpdateAddress 更新账户下的地址
func (h *AccountHandler) UpdateAddress(c *gin.Context) {
	accountID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的账户ID", err))
		return
	}
	addressID, err := strconv.Atoi(c.Param("address_id"))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的地址ID", err))
		return
	}

	address, err := h.accountService.GetAddressByID(addressID)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "查询地址失败", err))
		return
	}
	if address == nil {
		errors.HandleError(c, errors.New(errors.ErrAddressNotFound,
			fmt.Sprintf("Address with id '%d' could not be found.", addressID)))
		return
	}

	var body interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的地址数据", err))
		return
	}
	if err := address.Deserialize(body); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的地址数据", err))
		return
	}

	address.ID = addressID
	address.AccountID = accountID
	if err := h.accountService.UpdateAddress(address); err != nil {
		handleServiceError(c, err, "更新地址失败")
		return
	}

	c.JSON(http.StatusOK, address.Serialize())
}

// DeleteAddress 删除账户下的地址，重复删除同样返回 204
func (h *AccountHandler) DeleteAddress(c *gin.Context) {
	addressID, err := strconv.Atoi(c.Param("address_id"))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的地址ID", err))
		return
	}

	address, err := h.accountService.GetAddressByID(addressID)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "查询地址失败", err))
		return
	}
	if address != nil {
		if err := h.accountService.DeleteAddress(addressID); err != nil {
			handleServiceError(c, err, "删除地址失败")
			return
		}
	}

	c.Status(http.StatusNoContent)
}
