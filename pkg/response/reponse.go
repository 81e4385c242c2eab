package response

import (
	"github.com/gofiber/fiber/v2"
)

type ResponseOKWithDataModel struct {
	Code         int         `json:"code"`
	Data         interface{} `json:"data"`
	ErrorMessage string      `json:"errorMessage"`
}

func ResponseOKWithData(c *fiber.Ctx, data interface{}) error {
	response := ResponseOKWithDataModel{
		Code:         200,
		Data:         data,
		ErrorMessage: "",
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
