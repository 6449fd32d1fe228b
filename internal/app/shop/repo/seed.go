package repo

import (
	"fmt"

	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
)

type seedRow struct {
	id          int64
	name        string
	description string
	price       string
	imageURL    string
	category    string
	stock       int
}

const pexels = "https://images.pexels.com/photos/%d/pexels-photo-%d.jpeg?auto=compress&cs=tinysrgb&w=800"

func pexelsImage(photoID int) string {
	return fmt.Sprintf(pexels, photoID, photoID)
}

var seedRows = []seedRow{
	{1, "Wireless Headphones", "High-quality wireless headphones with noise cancellation and long battery life.", "99.99", pexelsImage(3394666), "Electronics", 15},
	{2, "Casual T-Shirt", "100% cotton casual t-shirt, perfect for everyday wear.", "24.99", pexelsImage(1656684), "Clothing", 50},
	{3, "Novel - The Great Journey", "A bestselling novel about adventure and discovery.", "18.95", pexelsImage(1907785), "Books", 30},
	{4, "Coffee Maker", "Programmable coffee maker with thermal carafe.", "79.95", pexelsImage(7474372), "Home & Kitchen", 10},
	{5, "Smartphone", "Latest model smartphone with high-resolution camera and fast processor.", "799.99", pexelsImage(1447254), "Electronics", 8},
	{6, "Winter Jacket", "Warm winter jacket with water-resistant outer shell.", "149.99", pexelsImage(8364025), "Clothing", 20},
	{7, "Cooking Basics Cookbook", "Learn all the basics of cooking with this illustrated cookbook.", "34.95", pexelsImage(4144234), "Books", 15},
	{8, "Blender", "Powerful blender for smoothies and food processing.", "69.99", pexelsImage(1714422), "Home & Kitchen", 12},
	{9, "Digital Camera", "Professional digital camera with 4K video recording.", "649.99", pexelsImage(90946), "Electronics", 5},
	{10, "Running Shoes", "Lightweight running shoes with cushioned soles.", "89.95", pexelsImage(1598505), "Clothing", 25},
	{11, "Science Fiction Collection", "A collection of classic science fiction novels.", "49.99", pexelsImage(2927080), "Books", 10},
	{12, "Stand Mixer", "Professional stand mixer for baking enthusiasts.", "299.99", pexelsImage(4194623), "Home & Kitchen", 7},
}

// SeedProducts returns the demo storefront catalog in featured order.
// Each call builds fresh products.
func SeedProducts() []*domain.Product {
	products := make([]*domain.Product, 0, len(seedRows))
	for _, r := range seedRows {
		price, err := domain.ParseMoney(r.price)
		if err != nil {
			panic(fmt.Sprintf("seed product %d: %v", r.id, err))
		}
		p, err := domain.NewProduct(r.id, r.name, r.description, price, r.imageURL, r.category, r.stock)
		if err != nil {
			panic(fmt.Sprintf("seed product %d: %v", r.id, err))
		}
		products = append(products, p)
	}
	return products
}
