package config

import (
	"FamilyPantry-Backend/internal/api/handlers"
	"FamilyPantry-Backend/internal/api/routes"
	"FamilyPantry-Backend/internal/middleware"
	"FamilyPantry-Backend/internal/utils"
	"FamilyPantry-Backend/pkg/house"
	"FamilyPantry-Backend/pkg/jwt"
	"FamilyPantry-Backend/pkg/meal"
	"FamilyPantry-Backend/pkg/pantry"
	"FamilyPantry-Backend/pkg/recipe"
	"FamilyPantry-Backend/pkg/shopping"
	"FamilyPantry-Backend/pkg/suggestion"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Europe/Rome",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	houseRepository := house.NewHouseRepository(db)
	pantryRepository := pantry.NewPantryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	mealRepository := meal.NewMealRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	pantryService := pantry.NewPantryService(pantryRepository, houseRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, houseRepository)
	suggestionService := suggestion.NewSuggestionService(
		pantryRepository,
		recipeRepository,
		houseRepository,
	)
	mealService := meal.NewMealService(mealRepository, recipeRepository, houseRepository)
	shoppingService := shopping.NewShoppingService(shoppingRepository, houseRepository)

	// Handler
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService, validator)
	mealHandler := handlers.NewMealHandler(mealService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		PantryHandler:     pantryHandler,
		RecipeHandler:     recipeHandler,
		SuggestionHandler: suggestionHandler,
		MealHandler:       mealHandler,
		ShoppingHandler:   shoppingHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
