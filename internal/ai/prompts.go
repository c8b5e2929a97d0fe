package ai

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed prompts/face_analysis.txt
var faceAnalysisPrompt string

//go:embed prompts/versus.txt
var versusPrompt string

//go:embed prompts/product_search.txt
var productSearchPrompt string

//go:embed prompts/brand_search.txt
var brandSearchPrompt string

//go:embed prompts/concern_explanation.txt
var concernExplanationPrompt string

//go:embed prompts/product_suitability.txt
var productSuitabilityPrompt string

// languageDirective tells the model which output language to use.
func languageDirective(lang Language) string {
	if lang == LanguageChinese {
		return "Provide the response in Simplified Chinese."
	}
	return "Provide the response in English."
}

// closing returns the shared prompt trailer with the language directive.
func closing(lang Language) string {
	return languageDirective(lang) + " Output strictly JSON."
}

func buildFaceAnalysisPrompt(lang Language) string {
	return strings.TrimSpace(faceAnalysisPrompt) + " " + closing(lang)
}

// buildVersusPrompt embeds both players' serialized analyses.
func buildVersusPrompt(p1JSON, p2JSON string, lang Language) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(versusPrompt))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Player 1 Data: %s\n", p1JSON)
	fmt.Fprintf(&b, "Player 2 Data: %s\n\n", p2JSON)
	b.WriteString(closing(lang))
	return b.String()
}

func buildProductSearchPrompt(productType, userContext, budget string, lang Language) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(productSearchPrompt))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Product type: %s\n", productType)
	fmt.Fprintf(&b, "User context: %s\n", userContext)
	fmt.Fprintf(&b, "Budget target: %s\n\n", budget)
	b.WriteString(closing(lang))
	return b.String()
}

func buildBrandSearchPrompt(brand, userContext string, lang Language) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(brandSearchPrompt))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Brand: %s\n", brand)
	fmt.Fprintf(&b, "User profile: %s\n\n", userContext)
	b.WriteString(closing(lang))
	return b.String()
}

func buildConcernExplanationPrompt(concern, userContext string, lang Language) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(concernExplanationPrompt))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Concern: %s\n", concern)
	fmt.Fprintf(&b, "User context: %s\n\n", userContext)
	b.WriteString(closing(lang))
	return b.String()
}

func buildProductSuitabilityPrompt(userProfile string, lang Language) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(productSuitabilityPrompt))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "User profile: %s\n\n", userProfile)
	b.WriteString(closing(lang))
	return b.String()
}
