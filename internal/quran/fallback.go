package quran

import "github.com/Duvar1/vakit/internal/model"

// fallbackVerses keeps the verse card alive when both providers are down.
var fallbackVerses = []model.Verse{
	{
		Arabic:    "فَإِنَّ مَعَ الْعُسْرِ يُسْرًا",
		Turkish:   "Şüphesiz her zorlukla beraber bir kolaylık vardır.",
		Reference: "İnşirah Suresi 5. Ayet",
		Source:    "fallback",
	},
	{
		Arabic:    "وَإِذَا سَأَلَكَ عِبَادِي عَنِّي فَإِنِّي قَرِيبٌ",
		Turkish:   "Kullarım sana beni sorduklarında, şüphesiz ben çok yakınım.",
		Reference: "Bakara Suresi 186. Ayet",
		Source:    "fallback",
	},
	{
		Arabic:    "أَلَا بِذِكْرِ اللَّهِ تَطْمَئِنُّ الْقُلُوبُ",
		Turkish:   "Bilesiniz ki, kalpler ancak Allah'ı anmakla huzur bulur.",
		Reference: "Ra'd Suresi 28. Ayet",
		Source:    "fallback",
	},
	{
		Arabic:    "وَمَن يَتَوَكَّلْ عَلَى اللَّهِ فَهُوَ حَسْبُهُ",
		Turkish:   "Kim Allah'a tevekkül ederse, O kendisine yeter.",
		Reference: "Talak Suresi 3. Ayet",
		Source:    "fallback",
	},
	{
		Arabic:    "إِنَّ اللَّهَ مَعَ الصَّابِرِينَ",
		Turkish:   "Şüphesiz Allah sabredenlerle beraberdir.",
		Reference: "Bakara Suresi 153. Ayet",
		Source:    "fallback",
	},
	{
		Arabic:    "رَبَّنَا آتِنَا فِي الدُّنْيَا حَسَنَةً وَفِي الْآخِرَةِ حَسَنَةً",
		Turkish:   "Rabbimiz! Bize dünyada da iyilik ver, ahirette de iyilik ver.",
		Reference: "Bakara Suresi 201. Ayet",
		Source:    "fallback",
	},
	{
		Arabic:    "وَقُل رَّبِّ زِدْنِي عِلْمًا",
		Turkish:   "De ki: Rabbim, ilmimi artır.",
		Reference: "Taha Suresi 114. Ayet",
		Source:    "fallback",
	},
}

// fallbackTranslation covers providers that return the ayah text without a
// Turkish rendering; a generic surah-level line is better than an empty
// card.
func fallbackTranslation(surah int) string {
	if surah < 1 || surah > surahCount {
		surah = 1
	}
	return fallbackVerses[surah%len(fallbackVerses)].Turkish
}
