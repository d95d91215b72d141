package content

import "github.com/Duvar1/vakit/internal/model"

var duas = []model.Dua{
	{
		Title:   "Tesbih Duası",
		Arabic:  "سُبْحَانَ اللَّهِ وَبِحَمْدِهِ",
		Turkish: "Allah'ı hamd ile tesbih ederim.",
		Source:  "Buhârî",
	},
	{
		Title:   "Sabah Duası",
		Arabic:  "اللَّهُمَّ بِكَ أَصْبَحْنَا وَبِكَ أَمْسَيْنَا",
		Turkish: "Allah'ım! Senin yardımınla sabaha çıktık, senin yardımınla akşama ulaştık.",
		Source:  "Tirmizî",
	},
	{
		Title:   "Hayır Duası",
		Arabic:  "رَبَّنَا آتِنَا فِي الدُّنْيَا حَسَنَةً",
		Turkish: "Rabbimiz! Bize dünyada iyilik ver.",
		Source:  "Bakara 201",
	},
	{
		Title:   "Şifa Duası",
		Arabic:  "اللَّهُمَّ رَبَّ النَّاسِ أَذْهِبِ الْبَأْسَ",
		Turkish: "Ey insanların Rabbi olan Allah'ım! Şu hastalığı gider.",
		Source:  "Buhârî",
	},
	{
		Title:   "İstiğfar",
		Arabic:  "أَسْتَغْفِرُ اللَّهَ الْعَظِيمَ",
		Turkish: "Yüce Allah'tan bağışlanma dilerim.",
		Source:  "Tirmizî",
	},
	{
		Title:   "Akşam Duası",
		Arabic:  "اللَّهُمَّ إِنِّي أَسْأَلُكَ الْعَافِيَةَ",
		Turkish: "Allah'ım! Senden afiyet dilerim.",
		Source:  "Ebû Dâvûd",
	},
}

var hadiths = []model.Hadith{
	{
		Text:   "Ameller niyetlere göredir.",
		Source: "Buhârî, Bed'ü'l-Vahy 1",
	},
	{
		Text:   "Kolaylaştırınız, zorlaştırmayınız; müjdeleyiniz, nefret ettirmeyiniz.",
		Source: "Buhârî, İlim 11",
	},
	{
		Text:   "Sizin en hayırlınız, Kur'an'ı öğrenen ve öğretendir.",
		Source: "Buhârî, Fezâilü'l-Kur'ân 21",
	},
	{
		Text:   "Mümin, insanların kendisinden emin olduğu kimsedir.",
		Source: "Tirmizî, Îmân 12",
	},
	{
		Text:   "Temizlik imanın yarısıdır.",
		Source: "Müslim, Tahâret 1",
	},
	{
		Text:   "Hiçbiriniz kendisi için istediğini kardeşi için istemedikçe iman etmiş olmaz.",
		Source: "Buhârî, Îmân 7",
	},
}
