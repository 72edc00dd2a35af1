package catalog

import "github.com/niksmo/storefront/internal/core/domain"

const (
	currency = "BRL"
	imgBase  = "https://images.unsplash.com/"
	imgOpts  = "?auto=format&fit=crop&q=80&w=800"
	catOpts  = "?auto=format&fit=crop&q=80&w=600"
)

func newArrivals() []domain.Product {
	return []domain.Product{
		{
			ProductID: "1", Name: "Camiseta Essential Organic",
			Price: price("89.00"), SalePrice: salePrice("79.90"), Currency: currency,
			Image:  imgBase + "photo-1521572163474-6864f9cf17ab" + imgOpts,
			Colors: []string{"#FFFFFF", "#000000", "#AEC6CF"},
			Reviews: 45, Rating: 4.8, IsNew: true, Category: "Feminino",
		},
		{
			ProductID: "2", Name: "T-Shirt Gola V Classic",
			Price: price("79.00"), Currency: currency,
			Image:  imgBase + "photo-1581655353564-df123a1eb820" + imgOpts,
			Colors: []string{"#36516d", "#CFCFC4"},
			Reviews: 28, Rating: 4.5, IsNew: true, Category: "Masculino",
		},
		{
			ProductID: "3", Name: "Camiseta Vintage Wash",
			Price: price("98.00"), Currency: currency,
			Image:  imgBase + "photo-1583743814966-8936f5b7be1a" + imgOpts,
			Colors: []string{"#1a1a1a", "#808080"},
			Reviews: 112, Rating: 4.9, IsNew: true, Category: "Masculino",
		},
		{
			ProductID: "4", Name: "Camiseta Estampa Floresta",
			Price: price("109.00"), SalePrice: salePrice("89.00"), Currency: currency,
			Image:  imgBase + "photo-1618354691373-d851c5c3a990" + imgOpts,
			Colors: []string{"#F5F5DC", "#1a1a1a"},
			Reviews: 65, Rating: 4.7, Category: "Estampadas",
		},
		{
			ProductID: "5", Name: "Baby Look Soft Cotton",
			Price: price("69.00"), SalePrice: salePrice("59.00"), Currency: currency,
			Image:  imgBase + "photo-1554568218-0f1715e72254" + imgOpts,
			Colors: []string{"#8b4513", "#FFFFFF"},
			Reviews: 89, Rating: 4.6, Category: "Feminino",
		},
		{
			ProductID: "6", Name: "Camiseta TreeBlend Logo",
			Price: price("85.00"), Currency: currency,
			Image:  imgBase + "photo-1576566588028-4147f3842f27" + imgOpts,
			Colors: []string{"#2e8b57", "#ffffff"},
			Reviews: 227, Rating: 4.9, Category: "Estampadas",
		},
	}
}

func bestsellers() []domain.Product {
	return []domain.Product{
		{
			ProductID: "7", Name: "Camiseta Heavy Weight",
			Price: price("119.00"), Currency: currency,
			Image:  imgBase + "photo-1562157873-818bc0726f68" + imgOpts,
			Colors: []string{"#d2b48c", "#000000"},
			Reviews: 54, Rating: 4.8, Category: "Masculino",
		},
		{
			ProductID: "8", Name: "Camiseta Save The Ocean",
			Price: price("95.00"), SalePrice: salePrice("85.00"), Currency: currency,
			Image:  imgBase + "photo-1503342394128-c104d54dba01" + imgOpts,
			Colors: []string{"#006400", "#1a1a1a", "#ffffff"},
			Reviews: 179, Rating: 4.9, Category: "Estampadas",
		},
		{
			ProductID: "9", Name: "Camiseta Cropped Hemp",
			Price: price("75.00"), Currency: currency,
			Image:  imgBase + "photo-1503342217505-b0a15ec3261c" + imgOpts,
			Colors: []string{"#808080", "#FFFFFF"},
			Reviews: 42, Rating: 4.5, Category: "Feminino",
		},
		{
			ProductID: "10", Name: "Camiseta Bolso Frontal",
			Price: price("89.00"), Currency: currency,
			Image:  imgBase + "photo-1618354691373-d851c5c3a990" + imgOpts,
			Colors: []string{"#1a1a1a", "#AEC6CF"},
			Reviews: 89, Rating: 4.7, Category: "Básicas",
		},
		{
			ProductID: "11", Name: "Camiseta Manga Longa Stripe",
			Price: price("129.00"), SalePrice: salePrice("99.00"), Currency: currency,
			Image:  imgBase + "photo-1596755094514-f87e34085b2c" + imgOpts,
			Colors: []string{"#556b2f", "#000000"},
			Reviews: 35, Rating: 4.6, Category: "Feminino",
		},
	}
}

func categories() []domain.Category {
	return []domain.Category{
		{CategoryID: "1", Name: "Feminino", Image: imgBase + "photo-1554568218-0f1715e72254" + catOpts},
		{CategoryID: "2", Name: "Masculino", Image: imgBase + "photo-1521572163474-6864f9cf17ab" + catOpts},
		{CategoryID: "3", Name: "Estampadas", Image: imgBase + "photo-1503341455253-b2e72333dbdb" + catOpts},
		{CategoryID: "4", Name: "Básicas", Image: imgBase + "photo-1562157873-818bc0726f68" + catOpts},
		{CategoryID: "5", Name: "Manga Longa", Image: imgBase + "photo-1618354691373-d851c5c3a990" + catOpts},
		{CategoryID: "6", Name: "Edição Limitada", Image: imgBase + "photo-1583743814966-8936f5b7be1a" + catOpts},
	}
}
