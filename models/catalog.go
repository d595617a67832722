package models

// Catalog is the fixed dish list schedules are drawn from. Every category
// must keep at least one entry; the planner refuses to draw from an empty
// category rather than panic.
var Catalog = []Dish{
	// Main courses (lunch and dinner).
	{Name: "Bhindi", Category: CategoryMainCourse},
	{Name: "Matar Paneer", Category: CategoryMainCourse},
	{Name: "Butter Paneer", Category: CategoryMainCourse},
	{Name: "Palak Paneer", Category: CategoryMainCourse},
	{Name: "Rajma Chawal", Category: CategoryMainCourse},
	{Name: "Chole Chawal", Category: CategoryMainCourse},
	{Name: "Dal Tadka", Category: CategoryMainCourse},
	{Name: "Dal Makhani", Category: CategoryMainCourse},
	{Name: "Baingan Bharta", Category: CategoryMainCourse},
	{Name: "Aloo Matar", Category: CategoryMainCourse},
	{Name: "Kadhi Pakora", Category: CategoryMainCourse},
	{Name: "Aloo Paratha", Category: CategoryMainCourse},
	{Name: "Methi Aloo", Category: CategoryMainCourse},
	{Name: "Chana Dal", Category: CategoryMainCourse},
	{Name: "Besan ki Sabzi", Category: CategoryMainCourse},
	{Name: "Chilli Paneer", Category: CategoryMainCourse},
	{Name: "Veg Fried Rice", Category: CategoryMainCourse},
	{Name: "Chilli Potato", Category: CategoryMainCourse},
	{Name: "Chilli Chicken", Category: CategoryMainCourse},
	{Name: "Pav Bhaji", Category: CategoryMainCourse},
	{Name: "Idli Sambhar", Category: CategoryMainCourse},
	{Name: "Dosa Sambhar", Category: CategoryMainCourse},
	{Name: "Chane Chawal", Category: CategoryMainCourse},
	{Name: "Paneer Pulao", Category: CategoryMainCourse},
	{Name: "Kadhai Paneer", Category: CategoryMainCourse},
	{Name: "Jeera Aloo", Category: CategoryMainCourse},

	// Breakfast.
	{Name: "Oats", Category: CategoryBreakfast},
	{Name: "Paneer Sandwich", Category: CategoryBreakfast},
	{Name: "Poha (Peanut Heavy)", Category: CategoryBreakfast},
	{Name: "Cheese Sandwich", Category: CategoryBreakfast},
	{Name: "Pizza Sandwich", Category: CategoryBreakfast},
	{Name: "Omelette", Category: CategoryBreakfast},
	{Name: "Boiled Eggs", Category: CategoryBreakfast},
	{Name: "Pan Cakes", Category: CategoryBreakfast},
	{Name: "Besan Cheela", Category: CategoryBreakfast},
	{Name: "Suji Cheela", Category: CategoryBreakfast},
	{Name: "Aloo Methi Parathe", Category: CategoryBreakfast},
	{Name: "Dal k Parathe", Category: CategoryBreakfast},
	{Name: "Paneer k Parathe", Category: CategoryBreakfast},
	{Name: "Aloo Parathe", Category: CategoryBreakfast},

	// Salads and accompaniments.
	{Name: "Boondi Raita", Category: CategoryAccompaniment},
	{Name: "Chickpea Salad", Category: CategoryAccompaniment},
	{Name: "Papad", Category: CategoryAccompaniment},
	{Name: "Sprouts", Category: CategoryAccompaniment},
	{Name: "Fiyums", Category: CategoryAccompaniment},
}
