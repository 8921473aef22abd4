package lineup

// Default returns the compiled-in lineup. Selectors are iptv-org tvg-ids;
// the @HD and @SD feed variants are left out on purpose.
func Default() Lineup {
	return Lineup{
		Languages: []Language{
			{
				Name: "Tamil",
				Categories: []Category{
					{Name: "Kids", Selectors: []string{
						"ChuttiTV.in",
					}},
					{Name: "Movies", Selectors: []string{
						"JMovie.in",
						"SunLife.in",
						"RajDigitalPlus.in",
						"KTV.in",
						"SuriyanTV.in",
						"AnandhamTV.in",
						"RojaMovies.in",
					}},
					{Name: "News", Selectors: []string{
						"News18TamilNadu.in",
						"PolimerNews.in",
						"News7Tamil.in",
						"SunNews.in",
						"PuthiyaThalaimurai.in",
						"ThanthiTV.in",
						"MadhimugamTV.in",
						"WinTV.in",
						"NewsJ.in",
						"NewsTamil24x7.in",
						"Velicham.in",
						"TamilJanam.in",
					}},
					{Name: "Entertainment", Selectors: []string{
						"JayaTV.in",
						"ColorsTamil.in",
						"PolimerTV.in",
						"RajTV.in",
						"MakkalTV.in",
						"AdithyaTV.in",
						"PeppersTV.in",
						"VendharTV.in",
						"SunTV.in",
						"VaanavilTV.in",
						"KalaignarTV.in",
						"MoonTV.in",
						"MKSix.in",
						"SanaTV.in",
						"SubinTV.in",
						"BrioTV.in",
						"NTCTV.in",
						"SuriyaTV.in",
						"RojaTV.in",
					}},
					{Name: "Music", Selectors: []string{
						"RajMusixTamil.in",
						"Tunes6.in",
						"SunMusic.in",
						"SanaPlus.in",
						"AaryaaTV.in",
						"UltimateTV.in",
					}},
					{Name: "Infotainment", Selectors: []string{
						"HistoryTV18.in",
					}},
					{Name: "Devotional", Selectors: []string{
						"AngelTV.in",
						"SaiTV.in",
						"MadhaTV.in",
						"SVBC.in",
						"SVBC3.in",
						"SVBC4.in",
						"OMTV.in",
					}},
					{Name: "Lifestyle", Selectors: []string{
						"Travelxp.in",
					}},
					{Name: "Sports", Selectors: []string{
						"SonySportsTen2.in",
					}},
					{Name: "Shopping"},
				},
			},
			{
				Name: "Hindi",
				Categories: []Category{
					{Name: "News"},
					{Name: "Music"},
					{Name: "Entertainment"},
				},
			},
			{
				Name: "Telugu",
				Categories: []Category{
					{Name: "News"},
					{Name: "Entertainment"},
				},
			},
		},
	}
}
