package authValidator

import (
	"medipulse/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Username  string `json:"username" validate:"required,min=3"`
			Password  string `json:"password" validate:"required,min=6"`
			Password2 string `json:"password2"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.StructField() {
				case "Username":
					errors["username"] = "Username must be at least 3 characters."
				case "Password":
					errors["password"] = "Password must be at least 6 characters."
				}
			}
		}

		if reqData.Password2 != "" && reqData.Password2 != reqData.Password {
			errors["password2"] = "Passwords do not match."
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Username string `json:"username" validate:"required"`
			Password string `json:"password" validate:"required"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.StructField() {
				case "Username":
					errors["username"] = "Username is required."
				case "Password":
					errors["password"] = "Password is required."
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
