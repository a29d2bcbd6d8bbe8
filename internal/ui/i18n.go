package ui

import "fmt"

// Text is a UI label in both supported locales.
type Text struct {
	EN string
	MY string
}

func (t Text) For(locale string) string {
	if locale == "my" && t.MY != "" {
		return t.MY
	}
	return t.EN
}

var (
	txtFavorites    = Text{EN: "Favorites", MY: "အနှစ်သက်ဆုံးများ"}
	txtWatchLater   = Text{EN: "Watch Later", MY: "နောက်မှကြည့်ရန်"}
	txtPlay         = Text{EN: "Play", MY: "ကြည့်ရန်"}
	txtListEmpty    = Text{EN: "No movies in this list yet.", MY: "ဤစာရင်းတွင် ရုပ်ရှင် မရှိသေးပါ။"}
	txtNoResults    = Text{EN: "No results found.", MY: "ရလဒ်များ မတွေ့ပါ။"}
	txtChatPrompt   = Text{EN: "Ask about movies...", MY: "ရုပ်ရှင်များအကြောင်း မေးမြန်းပါ..."}
	txtViewCategory = Text{EN: "View Category", MY: "ကဏ္ဍကြည့်ရန်"}
)

func txtResultsFor(locale, query string) string {
	if locale == "my" {
		return fmt.Sprintf("\"%s\" အတွက် ရှာဖွေမှုရလဒ်များ", query)
	}
	return fmt.Sprintf("Results for \"%s\"", query)
}
