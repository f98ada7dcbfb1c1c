package catalog

import "github.com/shopspring/decimal"

var products = []Product{
	{
		ID:          "sneakers-001",
		Title:       "Velocity Run Sneakers",
		Price:       decimal.NewFromInt(129),
		Image:       "/assets/products/sneakers.jpg",
		Rating:      4.6,
		Category:    "Footwear",
		Description: "Experience ultimate comfort and style with our Velocity Run Sneakers. Featuring advanced cushioning technology, breathable mesh upper, and a durable rubber outsole for superior traction. Perfect for running, gym workouts, or casual everyday wear.",
	},
	{
		ID:          "headphones-002",
		Title:       "Pulse Wireless Headphones",
		Price:       decimal.NewFromInt(179),
		Image:       "/assets/products/headphones.jpg",
		Rating:      4.8,
		Category:    "Audio",
		Description: "Immerse yourself in crystal-clear sound with our Pulse Wireless Headphones. Featuring active noise cancellation, 30-hour battery life, and premium comfort padding. Perfect for music lovers, gamers, and professionals who demand exceptional audio quality.",
	},
	{
		ID:          "watch-003",
		Title:       "Apex Smart Watch",
		Price:       decimal.NewFromInt(249),
		Image:       "/assets/products/watch.jpg",
		Rating:      4.5,
		Category:    "Wearables",
		Description: "Stay connected and track your fitness goals with the Apex Smart Watch. Features include heart rate monitoring, GPS tracking, 7-day battery life, water resistance, and seamless smartphone integration. Your perfect companion for an active lifestyle.",
	},
	{
		ID:          "backpack-004",
		Title:       "Urban Commuter Backpack",
		Price:       decimal.NewFromInt(99),
		Image:       "/assets/products/backpack.jpg",
		Rating:      4.4,
		Category:    "Bags",
		Description: "Organize your daily essentials with style using our Urban Commuter Backpack. Features multiple compartments, laptop sleeve, water-resistant fabric, and ergonomic design. Ideal for students, professionals, and travelers seeking functionality and durability.",
	},
	{
		ID:          "sunglasses-005",
		Title:       "Spectrum Sunglasses",
		Price:       decimal.NewFromInt(89),
		Image:       "/assets/products/sunglasses.jpg",
		Rating:      4.2,
		Category:    "Accessories",
		Description: "Protect your eyes in style with our Spectrum Sunglasses. Featuring UV400 protection, polarized lenses, lightweight titanium frame, and anti-reflective coating. Perfect for driving, outdoor activities, and making a fashion statement.",
	},
	{
		ID:          "hoodie-006",
		Title:       "Nimbus Fleece Hoodie",
		Price:       decimal.NewFromInt(79),
		Image:       "/assets/products/hoodie.jpg",
		Rating:      4.7,
		Category:    "Apparel",
		Description: "Stay warm and comfortable with our Nimbus Fleece Hoodie. Made from premium cotton-polyester blend, featuring a soft fleece interior, adjustable hood, and kangaroo pocket. Perfect for casual wear, outdoor activities, and cozy evenings.",
	},
}
