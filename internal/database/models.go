package database

import (
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Table aliases used by repositories when the table name is overridden.
const (
	UserAlias = "u"
	FoodAlias = "food"
)

// Tables holds the physical table names, overridable through configuration.
type Tables struct {
	Users string
	Food  string
}

// DefaultTables matches the names used by the migrations when no override is set.
func DefaultTables() Tables {
	return Tables{Users: "users", Food: "food"}
}

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        uuid.UUID `bun:"user_id,pk,type:uuid"`
	Username  string    `bun:"username,notnull"`
	Email     string    `bun:"email,notnull"`
	Password  string    `bun:"password,notnull"`
	FirstName *string   `bun:"first_name"`
	LastName  *string   `bun:"last_name"`
	IsAdmin   bool      `bun:"is_admin,notnull"`
}

type Food struct {
	bun.BaseModel `bun:"table:food,alias:food"`

	ID     uuid.UUID `bun:"food_id,pk,type:uuid"`
	Name   string    `bun:"name,notnull"`
	Brand  *string   `bun:"brand"`
	Weight *float64  `bun:"weight"`

	Nutrients
}

// Nutrients are the optional nutrition facts of a food item. Column names and
// JSON keys are identical.
type Nutrients struct {
	Calories          *float64 `bun:"calories" json:"calories"`
	TotalFat          *float64 `bun:"total_fat" json:"total_fat"`
	SaturatedFat      *float64 `bun:"saturated_fat" json:"saturated_fat"`
	TransFat          *float64 `bun:"trans_fat" json:"trans_fat"`
	Cholesterol       *float64 `bun:"cholesterol" json:"cholesterol"`
	Protein           *float64 `bun:"protein" json:"protein"`
	DietaryFiber      *float64 `bun:"dietary_fiber" json:"dietary_fiber"`
	TotalCarbohydrate *float64 `bun:"total_carbohydrate" json:"total_carbohydrate"`

	// Minerals
	Sodium     *float64 `bun:"sodium" json:"sodium"`
	Chloride   *float64 `bun:"chloride" json:"chloride"`
	Potassium  *float64 `bun:"potassium" json:"potassium"`
	Sugars     *float64 `bun:"sugars" json:"sugars"`
	Iron       *float64 `bun:"iron" json:"iron"`
	Zinc       *float64 `bun:"zinc" json:"zinc"`
	Selenium   *float64 `bun:"selenium" json:"selenium"`
	Calcium    *float64 `bun:"calcium" json:"calcium"`
	Iodine     *float64 `bun:"iodine" json:"iodine"`
	Magnesium  *float64 `bun:"magnesium" json:"magnesium"`
	Phosphorus *float64 `bun:"phosphorus" json:"phosphorus"`
	Fluoride   *float64 `bun:"fluoride" json:"fluoride"`

	// Vitamins
	VitaminA   *float64 `bun:"vitamin_a" json:"vitamin_a"`
	VitaminD   *float64 `bun:"vitamin_d" json:"vitamin_d"`
	VitaminE   *float64 `bun:"vitamin_e" json:"vitamin_e"`
	VitaminK   *float64 `bun:"vitamin_k" json:"vitamin_k"`
	Thiamin    *float64 `bun:"thiamin" json:"thiamin"`
	Riboflavin *float64 `bun:"riboflavin" json:"riboflavin"`
	Niacin     *float64 `bun:"niacin" json:"niacin"`
	VitaminB1  *float64 `bun:"vitamin_b1" json:"vitamin_b1"`
	VitaminB6  *float64 `bun:"vitamin_b6" json:"vitamin_b6"`
	VitaminB12 *float64 `bun:"vitamin_b12" json:"vitamin_b12"`
	Folate     *float64 `bun:"folate" json:"folate"`
	VitaminC   *float64 `bun:"vitamin_c" json:"vitamin_c"`
}

// NutrientColumns lists every nutrition column in declaration order.
var NutrientColumns = []string{
	"calories", "total_fat", "saturated_fat", "trans_fat", "cholesterol",
	"protein", "dietary_fiber", "total_carbohydrate",
	"sodium", "chloride", "potassium", "sugars", "iron", "zinc", "selenium",
	"calcium", "iodine", "magnesium", "phosphorus", "fluoride",
	"vitamin_a", "vitamin_d", "vitamin_e", "vitamin_k", "thiamin",
	"riboflavin", "niacin", "vitamin_b1", "vitamin_b6", "vitamin_b12",
	"folate", "vitamin_c",
}
