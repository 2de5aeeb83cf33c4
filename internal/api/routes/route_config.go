package routes

import (
	"FamilyPantry-Backend/internal/api/handlers"
	"FamilyPantry-Backend/internal/middleware"
	"FamilyPantry-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	PantryHandler     handlers.PantryHandler
	RecipeHandler     handlers.RecipeHandler
	SuggestionHandler handlers.SuggestionHandler
	MealHandler       handlers.MealHandler
	ShoppingHandler   handlers.ShoppingHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Pantry()
	c.Recipes()
	c.Planner()
	c.ShoppingLists()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/api/v1/houses/:houseId/pantry", c.Middleware.AuthMiddleware(c.JWTService))

	pantry.Get("", c.PantryHandler.GetPantry)
	pantry.Post("", c.PantryHandler.AddEntry)
	pantry.Patch("/:id/consume", c.PantryHandler.ConsumeEntry)
	pantry.Patch("/:id/unconsume", c.PantryHandler.UnconsumeEntry)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/houses/:houseId/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Post("", c.RecipeHandler.SaveRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
}

func (c *Config) Planner() {
	house := c.App.Group("/api/v1/houses/:houseId", c.Middleware.AuthMiddleware(c.JWTService))

	house.Post("/suggestions", c.SuggestionHandler.GenerateSuggestions)
	house.Post("/meals/confirm", c.MealHandler.ConfirmSelections)
	house.Get("/meals", c.MealHandler.GetMeals)
}

func (c *Config) ShoppingLists() {
	lists := c.App.Group("/api/v1/houses/:houseId/shopping-lists", c.Middleware.AuthMiddleware(c.JWTService))

	lists.Post("", c.ShoppingHandler.CreateList)
	lists.Get("", c.ShoppingHandler.GetLists)
	lists.Get("/:id", c.ShoppingHandler.GetListDetail)
	lists.Patch("/:id/status", c.ShoppingHandler.UpdateListStatus)

	// Advisory edit lock
	lists.Post("/:id/lock", c.ShoppingHandler.AcquireLock)
	lists.Delete("/:id/lock", c.ShoppingHandler.ReleaseLock)

	// Item mutations, all gated by the edit lock
	lists.Post("/:id/items", c.ShoppingHandler.AddItem)
	lists.Put("/:id/items/:itemId", c.ShoppingHandler.UpdateItem)
	lists.Delete("/:id/items/:itemId", c.ShoppingHandler.DeleteItem)
	lists.Patch("/:id/items/:itemId/quantity", c.ShoppingHandler.AdjustItemQuantity)
	lists.Patch("/:id/items/:itemId/check", c.ShoppingHandler.CheckItem)
	lists.Patch("/:id/items/:itemId/uncheck", c.ShoppingHandler.UncheckItem)
	lists.Patch("/:id/items/:itemId/verify", c.ShoppingHandler.VerifyItem)
	lists.Patch("/:id/items/:itemId/not-purchased", c.ShoppingHandler.MarkItemNotPurchased)
	lists.Patch("/:id/items/:itemId/undo", c.ShoppingHandler.UndoItem)
	lists.Post("/:id/items/:itemId/move", c.ShoppingHandler.MoveItem)
}
