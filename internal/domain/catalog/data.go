package catalog

import (
	"retail_assistant/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Default returns the store catalog and shipping table.
func Default() *Catalog {
	return New(defaultProducts(), defaultShippingRates())
}

func defaultShippingRates() []ShippingRate {
	return []ShippingRate{
		rate("Pakistan", "0.00"),
		rate("United States", "0.15"),
		rate("United Kingdom", "0.12"),
		rate("UK", "0.12"),
		rate("UAE", "0.10"),
		rate("United Arab Emirates", "0.10"),
		rate("Germany", "0.14"),
		rate("India", "0.08"),
		rate("Canada", "0.16"),
	}
}

func defaultProducts() []entities.Product {
	return []entities.Product{
		product("smartphones", "Apple", "iPhone 15 Pro", 1200, "Black", "Silver"),
		product("smartphones", "Apple", "iPhone 14", 900, "Blue", "Midnight"),
		product("smartphones", "Samsung", "Galaxy S23", 1000, "Black", "Green"),
		product("smartphones", "Samsung", "Galaxy A54", 500, "White", "Black"),
		product("smartphones", "Nokia", "Nokia G50", 350, "Blue", "Midnight Sun"),
		product("smartphones", "Nokia", "Nokia X20", 400, "Nordic Blue"),
		product("smartphones", "Oppo", "Oppo Reno 8", 550, "Black", "Gold"),
		product("smartphones", "Oppo", "Oppo A57", 250, "Green", "Black"),
		product("smartphones", "Realme", "Realme 10 Pro", 400, "Blue", "Black"),
		product("smartphones", "Realme", "Realme C55", 200, "Yellow", "Black"),
		product("smartphones", "Honor", "Honor 90", 500, "Emerald Green", "Black"),
		product("smartphones", "Honor", "Honor X8", 300, "Silver", "Black"),

		product("laptops", "Apple", "MacBook Air M2", 1500, "Gray", "Silver"),
		product("laptops", "Apple", "MacBook Pro 14", 2200, "Silver"),
		product("laptops", "Dell", "XPS 13", 1400, "Silver"),
		product("laptops", "Dell", "Inspiron 15", 800, "Black"),
		product("laptops", "HP", "HP Pavilion 15", 750, "Silver"),
		product("laptops", "HP", "HP Spectre x360", 1600, "Black"),
		product("laptops", "Lenovo", "ThinkPad X1 Carbon", 1700, "Black"),
		product("laptops", "Lenovo", "IdeaPad 3", 600, "Gray"),
		product("laptops", "Huawei", "MateBook D15", 900, "Gray"),
		product("laptops", "Huawei", "MateBook X Pro", 1800, "Silver"),

		product("headphones", "Sony", "WH-1000XM5", 400, "Black", "Silver"),
		product("headphones", "Sony", "WF-C700N (Earbuds)", 120, "Black", "White"),
		product("headphones", "Apple", "AirPods Pro 2", 250, "White"),
		product("headphones", "Apple", "AirPods Max", 600, "Gray", "Pink"),
		product("headphones", "Audionic", "Audionic Airbud 550", 40, "Black"),
		product("headphones", "Audionic", "Audionic Blue Beats B-747", 30, "Blue"),

		product("smartwatches", "Apple", "Apple Watch Series 9", 450, "Black", "Pink"),
		product("smartwatches", "Apple", "Apple Watch SE", 300, "Silver", "White"),
		product("smartwatches", "Samsung", "Galaxy Watch 6", 350, "Black", "Silver"),
		product("smartwatches", "Samsung", "Galaxy Watch 5 Pro", 400, "Gray"),
		product("smartwatches", "Huawei", "Huawei Watch GT 3", 280, "Brown", "Black"),
		product("smartwatches", "Huawei", "Huawei Watch Fit", 150, "Pink", "Black"),
		product("smartwatches", "Amazfit", "Amazfit GTS 4", 200, "Black", "Gold"),
		product("smartwatches", "Amazfit", "Amazfit Bip 3", 80, "Blue", "Black"),

		product("smart_home", "Google", "Nest Hub", 100, "White", "Charcoal"),
		product("smart_home", "Google", "Nest Mini", 50, "Gray", "Black"),
		product("smart_home", "Amazon", "Echo Dot 5th Gen", 60, "Black", "Blue"),
		product("smart_home", "Amazon", "Echo Show 8", 120, "White", "Black"),
		product("smart_home", "Xiaomi", "Mi Smart Speaker", 80, "Black", "White"),
		product("smart_home", "Xiaomi", "Mi Smart Clock", 60, "White"),

		product(AccessoriesCategory, "Belkin", "Wireless Charger", 50, "White"),
		product(AccessoriesCategory, "Belkin", "MagSafe 3-in-1 Dock", 120, "Black"),
		product(AccessoriesCategory, "Logitech", "MX Master 3S Mouse", 100, "Black"),
		product(AccessoriesCategory, "Logitech", "K380 Wireless Keyboard", 40, "Blue", "White"),
		product(AccessoriesCategory, "Audionic", "Power Bank 10000mAh", 25, "Black"),
		product(AccessoriesCategory, "Audionic", "Bluetooth Speaker Alien-2", 45, "Red", "Black"),
		product(AccessoriesCategory, "Generic", "Screen Protector", 10, "Transparent"),
		product(AccessoriesCategory, "Generic", "Phone Case", 20, "Black", "Blue", "Red"),
		product(AccessoriesCategory, "Generic", "Laptop Bag", 40, "Black", "Gray"),
		product(AccessoriesCategory, "Generic", "Cooling Pad", 25, "Black"),
		product(AccessoriesCategory, "Generic", "Carrying Case", 15, "Black"),
		product(AccessoriesCategory, "Generic", "Extra Ear Cushions", 10, "Black"),
		product(AccessoriesCategory, "Generic", "Extra Straps", 15, "Black", "White", "Pink"),
		product(AccessoriesCategory, "Generic", "Screen Guard", 8, "Transparent"),
		product(AccessoriesCategory, "Generic", "Smart Bulb", 25, "White"),
		product(AccessoriesCategory, "Generic", "Smart Plug", 30, "White"),
		product(AccessoriesCategory, "Generic", "USB-C Cable", 12, "White", "Black"),
		product(AccessoriesCategory, "Generic", "Portable Power Bank", 35, "Black"),
	}
}

func product(category, brand, model string, price int64, colors ...string) entities.Product {
	return entities.Product{
		Category: category,
		Brand:    brand,
		Model:    model,
		Colors:   colors,
		Price:    decimal.NewFromInt(price),
	}
}

func rate(country, fraction string) ShippingRate {
	return ShippingRate{Country: country, Rate: decimal.RequireFromString(fraction)}
}
