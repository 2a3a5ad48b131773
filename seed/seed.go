// Package seed loads the fixed sample catalog into the database.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"foodie-api/models"
)

type seedUser struct {
	name  string
	email string
	phone string
}

var sampleUsers = []seedUser{
	{name: "Mario Rossi", email: "mario@italianfood.com", phone: "+91-98765-43210"},
	{name: "Chen Wei", email: "chen@chinesedelight.com", phone: "+91-98765-43211"},
	{name: "Carlos Rodriguez", email: "carlos@mexicanfiesta.com", phone: "+91-98765-43212"},
	{name: "Priya Sharma", email: "priya@spicepalace.com", phone: "+91-98765-43213"},
	{name: "Somchai Tanaka", email: "somchai@thaigarden.com", phone: "+91-98765-43214"},
	{name: "John Smith", email: "john@americangrill.com", phone: "+91-98765-43215"},
}

// sampleRestaurants are indexed in parallel with sampleUsers: restaurant i
// is owned by user i.
var sampleRestaurants = []models.Restaurant{
	{
		Name:        "Bella Italia",
		Description: "Authentic Italian cuisine with fresh pasta, wood-fired pizzas, and traditional recipes passed down through generations.",
		Cuisine:     []string{"Italian"},
		Address: models.Address{
			Street: "Sector 17, Plaza", City: "Chandigarh", State: "Punjab", ZipCode: "160017",
			Coordinates: models.Coordinates{Lat: 30.7333, Lng: 76.7794},
		},
		Contact:      models.Contact{Phone: "+91-172-2701234", Email: "info@bellaitalia.com"},
		Rating:       4.8,
		ReviewCount:  245,
		DeliveryTime: models.DeliveryWindow{Min: 25, Max: 35},
		DeliveryFee:  49,
		MinimumOrder: 250,
		IsOpen:       true,
		OperatingHours: map[string]models.DayHours{
			"monday":    {Open: "11:00", Close: "22:00"},
			"tuesday":   {Open: "11:00", Close: "22:00"},
			"wednesday": {Open: "11:00", Close: "22:00"},
			"thursday":  {Open: "11:00", Close: "22:00"},
			"friday":    {Open: "11:00", Close: "23:00"},
			"saturday":  {Open: "11:00", Close: "23:00"},
			"sunday":    {Open: "12:00", Close: "21:00"},
		},
	},
	{
		Name:        "Golden Dragon",
		Description: "Traditional Chinese restaurant serving authentic Szechuan and Cantonese dishes with the finest ingredients.",
		Cuisine:     []string{"Chinese"},
		Address: models.Address{
			Street: "Sector 22, Market", City: "Chandigarh", State: "Punjab", ZipCode: "160022",
			Coordinates: models.Coordinates{Lat: 30.7333, Lng: 76.7794},
		},
		Contact:      models.Contact{Phone: "+91-172-2702345", Email: "info@goldendragon.com"},
		Rating:       4.6,
		ReviewCount:  189,
		DeliveryTime: models.DeliveryWindow{Min: 30, Max: 45},
		DeliveryFee:  59,
		MinimumOrder: 300,
		IsOpen:       true,
	},
	{
		Name:        "Casa Mexico",
		Description: "Vibrant Mexican restaurant offering fresh tacos, burritos, and traditional dishes with authentic flavors.",
		Cuisine:     []string{"Mexican"},
		Address: models.Address{
			Street: "Sector 35, Main Market", City: "Chandigarh", State: "Punjab", ZipCode: "160035",
			Coordinates: models.Coordinates{Lat: 30.7333, Lng: 76.7794},
		},
		Contact:      models.Contact{Phone: "+91-172-2703456", Email: "hola@casamexico.com"},
		Rating:       4.7,
		ReviewCount:  156,
		DeliveryTime: models.DeliveryWindow{Min: 20, Max: 30},
		DeliveryFee:  39,
		MinimumOrder: 200,
		IsOpen:       true,
	},
	{
		Name:        "Spice Palace",
		Description: "Exquisite Indian cuisine featuring aromatic curries, tandoor specialties, and traditional biryanis.",
		Cuisine:     []string{"Indian"},
		Address: models.Address{
			Street: "Sector 8, City Centre", City: "Chandigarh", State: "Punjab", ZipCode: "160008",
			Coordinates: models.Coordinates{Lat: 30.7333, Lng: 76.7794},
		},
		Contact:      models.Contact{Phone: "+91-172-2704567", Email: "namaste@spicepalace.com"},
		Rating:       4.9,
		ReviewCount:  298,
		DeliveryTime: models.DeliveryWindow{Min: 35, Max: 50},
		DeliveryFee:  69,
		MinimumOrder: 350,
		IsOpen:       true,
	},
	{
		Name:        "Thai Garden",
		Description: "Fresh and flavorful Thai cuisine with authentic pad thai, green curry, and traditional soups.",
		Cuisine:     []string{"Thai"},
		Address: models.Address{
			Street: "Sector 26, Shopping Complex", City: "Chandigarh", State: "Punjab", ZipCode: "160026",
			Coordinates: models.Coordinates{Lat: 30.7333, Lng: 76.7794},
		},
		Contact:      models.Contact{Phone: "+91-172-2705678", Email: "hello@thaigarden.com"},
		Rating:       4.5,
		ReviewCount:  167,
		DeliveryTime: models.DeliveryWindow{Min: 25, Max: 40},
		DeliveryFee:  49,
		MinimumOrder: 250,
		IsOpen:       true,
	},
	{
		Name:        "American Grill House",
		Description: "Classic American comfort food with juicy burgers, crispy fries, and hearty steaks.",
		Cuisine:     []string{"American"},
		Address: models.Address{
			Street: "Sector 17, Central Plaza", City: "Chandigarh", State: "Punjab", ZipCode: "160017",
			Coordinates: models.Coordinates{Lat: 30.7333, Lng: 76.7794},
		},
		Contact:      models.Contact{Phone: "+91-172-2706789", Email: "info@americangrill.com"},
		Rating:       4.4,
		ReviewCount:  203,
		DeliveryTime: models.DeliveryWindow{Min: 20, Max: 35},
		DeliveryFee:  39,
		MinimumOrder: 180,
		IsOpen:       true,
	},
}

// sampleMenuItems are assigned to restaurants in order, itemsPerRestaurant
// at a time.
const itemsPerRestaurant = 4

var sampleMenuItems = []models.MenuItem{
	// Bella Italia
	{
		Name:        "Margherita Pizza",
		Description: "Classic wood-fired pizza with fresh mozzarella, basil, and San Marzano tomatoes",
		Price:       350, Category: models.CategoryMain,
		Ingredients: []string{"Mozzarella", "Basil", "Tomatoes", "Olive Oil"},
		Dietary:     []string{models.DietaryVegetarian},
		IsAvailable: true, Rating: 4.8, ReviewCount: 45,
	},
	{
		Name:        "Spaghetti Carbonara",
		Description: "Traditional Roman pasta with eggs, pecorino cheese, pancetta, and black pepper",
		Price:       420, Category: models.CategoryMain,
		Ingredients: []string{"Spaghetti", "Eggs", "Pecorino", "Pancetta"},
		IsAvailable: true, Rating: 4.9, ReviewCount: 38,
	},
	{
		Name:        "Caesar Salad",
		Description: "Crisp romaine lettuce with parmesan, croutons, and our signature Caesar dressing",
		Price:       250, Category: models.CategoryAppetizer,
		Ingredients: []string{"Romaine", "Parmesan", "Croutons", "Caesar Dressing"},
		Dietary:     []string{models.DietaryVegetarian},
		IsAvailable: true, Rating: 4.6, ReviewCount: 29,
	},
	{
		Name:        "Tiramisu",
		Description: "Classic Italian dessert with coffee-soaked ladyfingers and mascarpone cream",
		Price:       220, Category: models.CategoryDessert,
		Ingredients: []string{"Mascarpone", "Coffee", "Ladyfingers", "Cocoa"},
		Dietary:     []string{models.DietaryVegetarian},
		IsAvailable: true, Rating: 4.7, ReviewCount: 52,
	},
	// Golden Dragon
	{
		Name:        "Kung Pao Chicken",
		Description: "Spicy Szechuan dish with chicken, peanuts, vegetables, and chili peppers",
		Price:       320, Category: models.CategoryMain,
		Ingredients: []string{"Chicken", "Peanuts", "Bell Peppers", "Chili"},
		IsAvailable: true, Rating: 4.7, ReviewCount: 34,
	},
	{
		Name:        "Sweet and Sour Pork",
		Description: "Crispy pork with pineapple, bell peppers in tangy sweet and sour sauce",
		Price:       380, Category: models.CategoryMain,
		Ingredients: []string{"Pork", "Pineapple", "Bell Peppers", "Sweet & Sour Sauce"},
		IsAvailable: true, Rating: 4.5, ReviewCount: 28,
	},
	{
		Name:        "Spring Rolls",
		Description: "Crispy vegetable spring rolls served with sweet chili dipping sauce",
		Price:       180, Category: models.CategoryAppetizer,
		Ingredients: []string{"Cabbage", "Carrots", "Bean Sprouts", "Wrapper"},
		Dietary:     []string{models.DietaryVegetarian},
		IsAvailable: true, Rating: 4.4, ReviewCount: 41,
	},
	{
		Name:        "Fried Rice",
		Description: "Wok-fried rice with eggs, vegetables, and your choice of protein",
		Price:       280, Category: models.CategoryMain,
		Ingredients: []string{"Rice", "Eggs", "Mixed Vegetables", "Soy Sauce"},
		IsAvailable: true, Rating: 4.6, ReviewCount: 33,
	},
	// Casa Mexico
	{
		Name:        "Chicken Tacos",
		Description: "Three soft tacos with grilled chicken, onions, cilantro, and lime",
		Price:       300, Category: models.CategoryMain,
		Ingredients: []string{"Chicken", "Tortillas", "Onions", "Cilantro", "Lime"},
		IsAvailable: true, Rating: 4.8, ReviewCount: 67,
	},
	{
		Name:        "Beef Burrito",
		Description: "Large flour tortilla filled with seasoned beef, rice, beans, and cheese",
		Price:       340, Category: models.CategoryMain,
		Ingredients: []string{"Rice", "Beans", "Cheese", "Tortilla"},
		IsAvailable: true, Rating: 4.7, ReviewCount: 45,
	},
	{
		Name:        "Guacamole & Chips",
		Description: "Fresh avocado dip with lime, cilantro, and jalapeños served with tortilla chips",
		Price:       200, Category: models.CategoryAppetizer,
		Ingredients: []string{"Avocado", "Lime", "Cilantro", "Jalapeños", "Chips"},
		Dietary:     []string{models.DietaryVegetarian, models.DietaryVegan},
		IsAvailable: true, Rating: 4.9, ReviewCount: 78,
	},
	{
		Name:        "Churros",
		Description: "Crispy fried dough sticks rolled in cinnamon sugar, served with chocolate sauce",
		Price:       160, Category: models.CategoryDessert,
		Ingredients: []string{"Flour", "Cinnamon", "Sugar", "Chocolate"},
		Dietary:     []string{models.DietaryVegetarian},
		IsAvailable: true, Rating: 4.6, ReviewCount: 34,
	},
	// Spice Palace
	{
		Name:        "Chicken Tikka Masala",
		Description: "Tender chicken in creamy tomato-based curry sauce with aromatic spices",
		Price:       380, Category: models.CategoryMain,
		Ingredients: []string{"Chicken", "Tomatoes", "Cream", "Spices"},
		IsAvailable: true, Rating: 4.9, ReviewCount: 89,
	},
	{
		Name:        "Vegetable Biryani",
		Description: "Fragrant basmati rice with mixed vegetables, saffron, and traditional spices",
		Price:       320, Category: models.CategoryMain,
		Ingredients: []string{"Basmati Rice", "Mixed Vegetables", "Saffron", "Spices"},
		Dietary:     []string{models.DietaryVegetarian},
		IsAvailable: true, Rating: 4.7, ReviewCount: 56,
	},
	{
		Name:        "Samosas",
		Description: "Crispy pastries filled with spiced potatoes and peas, served with chutney",
		Price:       140, Category: models.CategoryAppetizer,
		Ingredients: []string{"Potatoes", "Peas", "Pastry", "Spices"},
		Dietary:     []string{models.DietaryVegetarian},
		IsAvailable: true, Rating: 4.8, ReviewCount: 43,
	},
	{
		Name:        "Mango Lassi",
		Description: "Refreshing yogurt drink blended with sweet mango and cardamom",
		Price:       90, Category: models.CategoryBeverage,
		Ingredients: []string{"Yogurt", "Mango", "Cardamom", "Sugar"},
		Dietary:     []string{models.DietaryVegetarian},
		IsAvailable: true, Rating: 4.6, ReviewCount: 29,
	},
	// Thai Garden
	{
		Name:        "Pad Thai",
		Description: "Stir-fried rice noodles with shrimp, tofu, bean sprouts, and tamarind sauce",
		Price:       320, Category: models.CategoryMain,
		Ingredients: []string{"Rice Noodles", "Shrimp", "Tofu", "Bean Sprouts", "Tamarind"},
		IsAvailable: true, Rating: 4.8, ReviewCount: 72,
	},
	{
		Name:        "Green Curry",
		Description: "Spicy coconut curry with chicken, Thai basil, and vegetables",
		Price:       360, Category: models.CategoryMain,
		Ingredients: []string{"Chicken", "Coconut Milk", "Green Curry Paste", "Thai Basil"},
		IsAvailable: true, Rating: 4.7, ReviewCount: 48,
	},
	{
		Name:        "Tom Yum Soup",
		Description: "Hot and sour soup with shrimp, mushrooms, lemongrass, and lime leaves",
		Price:       220, Category: models.CategoryAppetizer,
		Ingredients: []string{"Shrimp", "Mushrooms", "Lemongrass", "Lime Leaves"},
		IsAvailable: true, Rating: 4.6, ReviewCount: 35,
	},
	{
		Name:        "Mango Sticky Rice",
		Description: "Sweet sticky rice topped with fresh mango slices and coconut cream",
		Price:       180, Category: models.CategoryDessert,
		Ingredients: []string{"Sticky Rice", "Mango", "Coconut Cream", "Sugar"},
		Dietary:     []string{models.DietaryVegetarian, models.DietaryVegan},
		IsAvailable: true, Rating: 4.9, ReviewCount: 41,
	},
	// American Grill House
	{
		Name:        "Classic Cheeseburger",
		Description: "Juicy patty with cheddar cheese, lettuce, tomato, and special sauce",
		Price:       300, Category: models.CategoryMain,
		Ingredients: []string{"Patty", "Cheddar", "Lettuce", "Tomato", "Bun"},
		IsAvailable: true, Rating: 4.5, ReviewCount: 67,
	},
	{
		Name:        "BBQ Ribs",
		Description: "Slow-cooked pork ribs with tangy BBQ sauce and coleslaw",
		Price:       480, Category: models.CategoryMain,
		Ingredients: []string{"Pork Ribs", "BBQ Sauce", "Coleslaw", "Spices"},
		IsAvailable: true, Rating: 4.7, ReviewCount: 54,
	},
	{
		Name:        "Chicken Wings",
		Description: "Crispy chicken wings tossed in spicy sauce with ranch dip",
		Price:       250, Category: models.CategoryAppetizer,
		Ingredients: []string{"Chicken Wings", "Sauce", "Ranch", "Celery"},
		IsAvailable: true, Rating: 4.6, ReviewCount: 43,
	},
	{
		Name:        "Apple Pie",
		Description: "Classic American apple pie with cinnamon and vanilla ice cream",
		Price:       160, Category: models.CategoryDessert,
		Ingredients: []string{"Apples", "Cinnamon", "Pie Crust", "Vanilla Ice Cream"},
		Dietary:     []string{models.DietaryVegetarian},
		IsAvailable: true, Rating: 4.8, ReviewCount: 38,
	},
}

// Database reseeds the sample catalog. Destructive: users, restaurants and
// menu items are cleared first. Orders are left untouched.
func Database(ctx context.Context, db *mongo.Database) error {
	users := db.Collection("users")
	restaurants := db.Collection("restaurants")
	menuItems := db.Collection("menuitems")

	for _, coll := range []*mongo.Collection{users, restaurants, menuItems} {
		if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("clear %s: %w", coll.Name(), err)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash sample password: %w", err)
	}

	now := time.Now().UTC()

	userDocs := make([]interface{}, 0, len(sampleUsers))
	for _, u := range sampleUsers {
		userDocs = append(userDocs, models.User{
			Name:      u.name,
			Email:     u.email,
			Password:  string(hashedPassword),
			Phone:     u.phone,
			Role:      models.RoleRestaurant,
			CreatedAt: now,
		})
	}
	userResult, err := users.InsertMany(ctx, userDocs)
	if err != nil {
		return fmt.Errorf("insert users: %w", err)
	}

	restaurantDocs := make([]interface{}, 0, len(sampleRestaurants))
	for i, restaurant := range sampleRestaurants {
		restaurant.Owner = userResult.InsertedIDs[i].(primitive.ObjectID)
		restaurant.CreatedAt = now
		restaurantDocs = append(restaurantDocs, restaurant)
	}
	restaurantResult, err := restaurants.InsertMany(ctx, restaurantDocs)
	if err != nil {
		return fmt.Errorf("insert restaurants: %w", err)
	}

	menuDocs := make([]interface{}, 0, len(sampleMenuItems))
	for i, item := range sampleMenuItems {
		restaurantIndex := i / itemsPerRestaurant
		if restaurantIndex >= len(restaurantResult.InsertedIDs) {
			break
		}
		item.Restaurant = restaurantResult.InsertedIDs[restaurantIndex].(primitive.ObjectID)
		item.CreatedAt = now
		menuDocs = append(menuDocs, item)
	}
	if _, err := menuItems.InsertMany(ctx, menuDocs); err != nil {
		return fmt.Errorf("insert menu items: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"users":       len(userDocs),
		"restaurants": len(restaurantDocs),
		"menuItems":   len(menuDocs),
	}).Info("database seeded")

	return nil
}
