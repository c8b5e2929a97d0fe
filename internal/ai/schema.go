package ai

import "google.golang.org/genai"

// Response schemas for the six request kinds, declared as data and sent
// with every Gemini call. Field names and enums must stay in sync with
// the structs in provider.go.

var analysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"skin_analysis": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"skin_type": {Type: genai.TypeString},
				"skin_tone": {Type: genai.TypeString},
				"concerns":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"summary":   {Type: genai.TypeString},
			},
			Required: []string{"skin_type", "concerns", "summary"},
		},
		"face_map": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"zone":      {Type: genai.TypeString},
					"condition": {Type: genai.TypeString},
					"severity":  {Type: genai.TypeString, Enum: []string{SeverityHigh, SeverityMedium, SeverityLow, SeverityNone}},
				},
				Required: []string{"zone", "condition", "severity"},
			},
		},
		"hair_analysis": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"hair_type": {Type: genai.TypeString},
				"condition": {Type: genai.TypeString},
				"concerns":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			},
			Required: []string{"hair_type", "condition"},
		},
		"recommendations": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"category":        {Type: genai.TypeString},
					"product_type":    {Type: genai.TypeString},
					"suggestion":      {Type: genai.TypeString},
					"key_ingredients": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"usage_frequency": {Type: genai.TypeString},
				},
				Required: []string{"category", "product_type", "suggestion", "key_ingredients", "usage_frequency"},
			},
		},
		"lifestyle_suggestions": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"category": {Type: genai.TypeString},
					"title":    {Type: genai.TypeString},
					"details":  {Type: genai.TypeString},
				},
				Required: []string{"category", "title", "details"},
			},
		},
	},
	Required: []string{"skin_analysis", "face_map", "hair_analysis", "recommendations", "lifestyle_suggestions"},
}

var versusSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"battle_summary": {Type: genai.TypeString},
		"categories": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"category_name": {Type: genai.TypeString},
					"winner":        {Type: genai.TypeString, Enum: []string{WinnerPlayer1, WinnerPlayer2, WinnerDraw}},
					"reason":        {Type: genai.TypeString},
					"p1_status":     {Type: genai.TypeString},
					"p2_status":     {Type: genai.TypeString},
				},
				Required: []string{"category_name", "winner", "reason", "p1_status", "p2_status"},
			},
		},
		"overall_glow_winner": {Type: genai.TypeString, Enum: []string{WinnerPlayer1, WinnerPlayer2, WinnerDraw}},
		"final_verdict":       {Type: genai.TypeString},
	},
	Required: []string{"battle_summary", "categories", "overall_glow_winner", "final_verdict"},
}

// specificProductSchema is shared by product search and brand search.
var specificProductSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"tier":            {Type: genai.TypeString, Enum: []string{TierGold, TierSilver, TierBronze}},
			"brand":           {Type: genai.TypeString},
			"product_name":    {Type: genai.TypeString},
			"price_estimate":  {Type: genai.TypeString},
			"reason":          {Type: genai.TypeString},
			"product_link":    {Type: genai.TypeString},
			"key_ingredients": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"usage_frequency": {Type: genai.TypeString},
			"image_url":       {Type: genai.TypeString},
		},
		Required: []string{"tier", "brand", "product_name", "price_estimate", "reason", "product_link", "key_ingredients", "usage_frequency"},
	},
}

var concernExplanationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"concern_name":            {Type: genai.TypeString},
		"what_is_it":              {Type: genai.TypeString},
		"why_it_occurs":           {Type: genai.TypeString},
		"management_tips":         {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"ingredients_to_look_for": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	},
	Required: []string{"concern_name", "what_is_it", "why_it_occurs", "management_tips", "ingredients_to_look_for"},
}

var productSuitabilitySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"product_name":      {Type: genai.TypeString},
		"brand":             {Type: genai.TypeString},
		"suitability_score": {Type: genai.TypeInteger},
		"verdict": {Type: genai.TypeString, Enum: []string{
			VerdictExcellentMatch, VerdictGood, VerdictFair, VerdictNotRecommended, VerdictCaution,
		}},
		"reasoning":            {Type: genai.TypeString},
		"ingredients_analysis": {Type: genai.TypeString},
		"quantity_to_buy":      {Type: genai.TypeString},
		"usage_instructions":   {Type: genai.TypeString},
	},
	Required: []string{"product_name", "brand", "suitability_score", "verdict", "reasoning", "ingredients_analysis", "quantity_to_buy", "usage_instructions"},
}
