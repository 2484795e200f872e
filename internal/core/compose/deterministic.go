package compose

import (
	"fmt"
	"strings"

	"github.com/agenthands/praline/internal/core/intent"
	"github.com/agenthands/praline/internal/core/model"
)

// deterministic formats a templated answer straight from the bundle.
// It never fails; thin context degrades to the default information card.
func (c *Composer) deterministic(query string, res intent.Result, entities []string, bundle *model.ContextBundle, contextText string) string {
	lower := strings.ToLower(query)

	var answer string
	switch {
	case res.Category == intent.CategoryAvailability || containsAny(lower, "where", "buy", "purchase", "find", "store"):
		answer = availabilityAnswer(entities, bundle)

	case res.Category == intent.CategoryCEO:
		answer = ceoAnswer(bundle)

	case res.Category == intent.CategoryNutrition && len(entities) > 0:
		answer = nutritionAnswer(entities[0], bundle, res.SpecificRequest)

	case res.Category == intent.CategoryIngredients && len(entities) > 0:
		answer = ingredientsAnswer(entities[0], bundle)

	case res.Category == intent.CategoryCompany:
		answer = companyAnswer(bundle)

	case res.Category == intent.CategorySustainability:
		answer = sustainabilityAnswer(bundle)

	case res.Category == intent.CategoryRecipe:
		answer = recipeAnswer(lower)

	case res.Category == intent.CategorySeasonal:
		answer = seasonalAnswer(lower)

	case res.Category == intent.CategoryProductInfo && len(entities) > 0:
		answer = productInfoAnswer(entities[0], bundle, contextText)

	case contextText != "":
		answer = "Based on our knowledge base:\n\n" + contextText

	default:
		answer = defaultInfo()
	}

	answer += closing(res.Category, entities)
	answer += "\n\nIs there anything specific you'd like to know more about?"
	return answer
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func availabilityAnswer(entities []string, bundle *model.ContextBundle) string {
	product := "Nestlé products"
	if len(entities) > 0 {
		product = entities[0]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Where to buy %s:**\n\n", product)
	fmt.Fprintf(&b, "%s is available at major retailers across Canada:\n\n", product)

	b.WriteString("**Major Supermarket Chains:**\n")
	if stores := bundle.DynamicInfo["store_locations"]; len(stores) > 0 {
		for _, store := range stores {
			name, _ := store["retailer"].(string)
			if name == "" {
				continue
			}
			fmt.Fprintf(&b, "• **%s**", name)
			if locations, ok := store["locations"].(string); ok && locations != "" {
				fmt.Fprintf(&b, " - %s", locations)
			}
			if website, ok := store["website"].(string); ok && website != "" {
				fmt.Fprintf(&b, " | Visit: %s", website)
			}
			b.WriteString("\n")
		}
	} else {
		b.WriteString("• **Walmart** - 400+ locations nationwide\n")
		b.WriteString("• **Loblaws** - 170+ stores in Ontario & Atlantic Canada\n")
		b.WriteString("• **Metro** - 650+ locations in Ontario & Quebec\n")
		b.WriteString("• **Sobeys** - 900+ stores nationwide\n")
	}

	b.WriteString("\n**Convenience Stores:**\n")
	b.WriteString("• 7-Eleven, Circle K, Mac's convenience stores\n\n")
	b.WriteString("**Pharmacies:**\n")
	b.WriteString("• Shoppers Drug Mart, Rexall, Jean Coutu\n\n")
	b.WriteString("**Store Locator Tips:**\n")
	b.WriteString("• Visit walmart.ca, loblaws.ca, or metro.ca store locators\n")
	fmt.Fprintf(&b, "• %s is typically found in the chocolate or candy aisle\n", product)
	fmt.Fprintf(&b, "• Call ahead to confirm %s availability at your local store", product)

	return b.String()
}

func ceoAnswer(bundle *model.ContextBundle) string {
	for _, node := range bundle.Nodes {
		if node.Type != "Person" {
			continue
		}
		person := node.Person()
		if strings.Contains(strings.ToLower(person.Role), "ceo") {
			return fmt.Sprintf("**%s** is the %s of Nestlé globally.\n\nHe leads the world's largest food and beverage company with operations in over 180 countries, committed to our mission of \"Good Food, Good Life.\"", node.Name, person.Role)
		}
	}

	return "**Mark Schneider** is the CEO of Nestlé globally, leading the world's largest food and beverage company with operations in over 180 countries. Nestlé Canada operates as a subsidiary of the global Nestlé company."
}

func nutritionAnswer(product string, bundle *model.ContextBundle, specificRequest string) string {
	var nutrition *model.NutritionProps
	for _, node := range bundle.Nodes {
		if node.Type == "Nutrition" {
			n := node.Nutrition()
			nutrition = &n
			break
		}
	}

	if nutrition == nil {
		return fmt.Sprintf("I don't have specific nutrition information for %s in my database. You can find detailed nutrition facts on the product packaging or at madewithnestle.ca.", product)
	}

	if strings.Contains(specificRequest, "calories") && nutrition.Calories != "" {
		serving := nutrition.ServingSize
		if serving == "" {
			serving = "serving"
		}
		return fmt.Sprintf("**%s** contains **%s calories** per %s.", product, nutrition.Calories, serving)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s Nutrition Information:**\n\n", product)
	if nutrition.ServingSize != "" {
		fmt.Fprintf(&b, "**Serving Size:** %s\n\n", nutrition.ServingSize)
	}

	facts := []struct{ label, value string }{
		{"Calories", nutrition.Calories},
		{"Protein", nutrition.Protein},
		{"Fat", nutrition.Fat},
		{"Carbohydrates", nutrition.Carbohydrates},
		{"Sugar", nutrition.Sugar},
		{"Iron", nutrition.Iron},
		{"Calcium", nutrition.Calcium},
	}
	for _, fact := range facts {
		if fact.value != "" {
			fmt.Fprintf(&b, "**%s:** %s\n", fact.label, fact.value)
		}
	}

	b.WriteString("\n*Part of a balanced diet and active lifestyle.*")
	return b.String()
}

func ingredientsAnswer(product string, bundle *model.ContextBundle) string {
	var ingredients []string
	for _, node := range bundle.Nodes {
		if node.Type == "Ingredient" {
			ingredients = append(ingredients, node.Name)
		}
	}

	if len(ingredients) == 0 {
		return fmt.Sprintf("I don't have specific ingredient information for %s in my database. Please check the product packaging for the complete ingredient list.", product)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s Contains:**\n\n", product)
	for _, ingredient := range ingredients {
		fmt.Fprintf(&b, "• %s\n", ingredient)
	}
	return b.String()
}

func companyAnswer(bundle *model.ContextBundle) string {
	var companies []model.GraphNode
	for _, node := range bundle.Nodes {
		if node.Type == "Company" {
			companies = append(companies, node)
		}
	}

	if len(companies) == 0 {
		return "**Nestlé Canada** is a leading food and beverage company with over 100 years of history in Canada, committed to \"Good Food, Good Life.\""
	}

	var b strings.Builder
	b.WriteString("**About Nestlé:**\n\n")
	for _, node := range companies {
		company := node.Company()
		fmt.Fprintf(&b, "**%s**\n", node.Name)
		if company.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", company.Description)
		}
		if company.Founded != "" {
			fmt.Fprintf(&b, "**Founded:** %s\n", company.Founded)
		}
		if company.Headquarters != "" {
			fmt.Fprintf(&b, "**Headquarters:** %s\n", company.Headquarters)
		}
		if company.Mission != "" {
			fmt.Fprintf(&b, "**Mission:** %s\n", company.Mission)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func sustainabilityAnswer(bundle *model.ContextBundle) string {
	var topics []model.GraphNode
	for _, node := range bundle.Nodes {
		if node.Type == "Topic" {
			topics = append(topics, node)
		}
	}

	if len(topics) == 0 {
		return "**Nestlé is committed to sustainability** through responsible sourcing, environmental stewardship, and supporting farming communities worldwide."
	}

	var b strings.Builder
	b.WriteString("**Nestlé Sustainability Commitments:**\n\n")
	for _, node := range topics {
		topic := node.Topic()
		fmt.Fprintf(&b, "**%s**\n", node.Name)
		if topic.Description != "" {
			fmt.Fprintf(&b, "%s\n", topic.Description)
		}
		if len(topic.Goals) > 0 {
			fmt.Fprintf(&b, "Goals: %s\n", strings.Join(topic.Goals, ", "))
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func productInfoAnswer(product string, bundle *model.ContextBundle, contextText string) string {
	for _, node := range bundle.DirectMatches() {
		if node.Type != "Product" || !strings.EqualFold(node.Name, product) {
			continue
		}
		p := node.Product()

		var b strings.Builder
		fmt.Fprintf(&b, "**%s**\n\n", node.Name)
		if p.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", p.Description)
		}
		if p.Tagline != "" {
			fmt.Fprintf(&b, "*\"%s\"*\n\n", p.Tagline)
		}
		if p.Launched != "" {
			fmt.Fprintf(&b, "**Launched:** %s\n", p.Launched)
		}
		if len(p.Varieties) > 0 {
			fmt.Fprintf(&b, "**Varieties:** %s\n", strings.Join(p.Varieties, ", "))
		}
		if len(p.Allergens) > 0 {
			fmt.Fprintf(&b, "**Allergens:** %s\n", strings.Join(p.Allergens, ", "))
		}
		return strings.TrimSpace(b.String())
	}

	if contextText != "" {
		return "Based on our knowledge base:\n\n" + contextText
	}
	return fmt.Sprintf("I don't have detailed information about %s in my database.", product)
}

func recipeAnswer(lower string) string {
	switch {
	case containsAny(lower, "healthy", "health"):
		return `**Healthy Recipe Ideas with Nestlé Products:**

**MILO Energy Balls** - No-bake energy treats packed with nutrients
• Key ingredients: MILO powder, oats, peanut butter, honey

**NIDO Mango Smoothie Bowl** - Creamy, protein-rich breakfast
• Key ingredients: NIDO milk powder, fresh mango, granola

Visit madewithnestle.ca/recipes for complete instructions and more healthy recipe ideas!`
	case containsAny(lower, "christmas", "holiday", "festive"):
		return `**Holiday Baking Ideas:**

• **Aero Chocolate Bark** - Easy holiday dessert
• **Coffee-mate Holiday Latte** - Warm festive drinks
• **KitKat Chocolate Cake** - Perfect for holiday parties

Visit madewithnestle.ca for complete holiday recipes!`
	default:
		return `**Popular Nestlé Recipes:**

**Sweet Treats:**
• **KitKat Chocolate Cake** - Decadent dessert with crushed KitKat
• **Smarties Cookies** - Colorful cookies kids love
• **Aero Chocolate Mousse** - Light and airy dessert

**Beverages:**
• **Coffee-mate Specialty Drinks** - Gourmet coffee creations
• **MILO Hot Chocolate** - Comforting winter drink

Visit madewithnestle.ca/recipes for complete instructions and video tutorials!`
	}
}

func seasonalAnswer(lower string) string {
	if containsAny(lower, "christmas", "holiday", "gift") {
		return `**Christmas Gift Ideas from Nestlé:**

**Chocolate Gifts:**
• **Quality Street** - Traditional Christmas chocolates
• **KitKat Holiday Edition** - Special festive packaging
• **Smarties Advent Calendar** - Daily treats for kids

**Holiday Beverages:**
• **Coffee-mate Holiday Flavors** - Pumpkin Spice, Gingerbread
• **MILO Hot Chocolate** - Warm winter comfort

Available at Walmart, Loblaws, Metro, Sobeys, and specialty gift shops across Canada.`
	}

	return `**Nestlé Seasonal Offerings:**

• **Fall:** Pumpkin Spice Coffee-mate, Halloween candy varieties
• **Winter:** Holiday-themed packaging, gift sets and bundles
• **Spring:** Easter chocolate shapes, pastel-colored Smarties
• **Summer:** Refreshing iced coffee recipes, snack packs

Each season brings special promotions and limited-edition products!`
}

func defaultInfo() string {
	return `**Welcome to Nestlé Canada!**

We're a leading food and beverage company with over 100 years of history in Canada. Our mission is "Good Food, Good Life."

**Popular Products:**
• **KitKat** - "Have a break, have a KitKat!"
• **Smarties** - Colorful chocolate candies
• **Aero** - Light, bubbly chocolate
• **Coffee-mate** - Premium coffee creamer

**Ask me about:**
• Product nutrition and ingredients
• Where to buy our products
• Company information and values
• Sustainability initiatives

*Try asking: "What calories are in KitKat?" or "Where can I buy Smarties?"*`
}

func closing(category string, entities []string) string {
	switch category {
	case intent.CategoryProductInfo, intent.CategoryNutrition, intent.CategoryIngredients:
		if len(entities) > 0 {
			return fmt.Sprintf("\n\nFor more detailed information about %s, including nutritional facts and availability, please visit madewithnestle.ca.", strings.Join(entities, ", "))
		}
		return "\n\nFor more detailed product information, please visit madewithnestle.ca."
	case intent.CategoryCompany, intent.CategoryCEO:
		return "\n\nFor comprehensive company information, leadership details, and corporate updates, visit corporate.nestle.ca."
	case intent.CategorySustainability:
		return "\n\nYou can learn more about our sustainability commitments and progress at madewithnestle.ca/sustainability."
	case intent.CategoryAvailability:
		return "\n\nFor the most current store locations and product availability, visit the retailer websites or use their store locator tools."
	default:
		return ""
	}
}
