package domain

// Station - опорная точка (станция метро) с фиксированными координатами
type Station struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// ToulouseMetroStations возвращает копию таблицы станций метро Тулузы.
// Порядок фиксирован: линия A, затем линия B. При равных расстояниях
// побеждает станция, стоящая раньше.
func ToulouseMetroStations() []Station {
	out := make([]Station, len(toulouseMetroStations))
	copy(out, toulouseMetroStations)
	return out
}

var toulouseMetroStations = []Station{
	// Ligne A
	{Name: "Balma-Gramont", Lat: 43.62971164231746, Lon: 1.4831444388334585},
	{Name: "Argoulets", Lat: 43.62439184264503, Lon: 1.4768072274086192},
	{Name: "Roseraie", Lat: 43.619870148945814, Lon: 1.4693228826532732},
	{Name: "Jolimont", Lat: 43.61538472316486, Lon: 1.4636057521703651},
	{Name: "Marengo – SNCF", Lat: 43.61072986498919, Lon: 1.4550073139327766},
	{Name: "Jean Jaurès", Lat: 43.60585995727777, Lon: 1.4491864712489415},
	{Name: "Capitole", Lat: 43.60419516166457, Lon: 1.4449659097167153},
	{Name: "Esquirol", Lat: 43.60030772301489, Lon: 1.4441848939899071},
	{Name: "Saint-Cyprien – République", Lat: 43.597832326764525, Lon: 1.4317676052962165},
	{Name: "Patte d'Oie", Lat: 43.59630560148399, Lon: 1.4233691391055898},
	{Name: "Arènes", Lat: 43.59336285730645, Lon: 1.418306789899077},
	{Name: "Fontaine-Lestang", Lat: 43.58751549085796, Lon: 1.4183833603785048},
	{Name: "Mermoz", Lat: 43.58345482990229, Lon: 1.4153180750828234},
	{Name: "Bagatelle", Lat: 43.579898082395694, Lon: 1.4119812195216574},
	{Name: "Mirail – Université", Lat: 43.574814562246765, Lon: 1.402110554498417},
	{Name: "Reynerie", Lat: 43.57071434748996, Lon: 1.4019491169204168},
	{Name: "Bellefontaine", Lat: 43.56609357794097, Lon: 1.398335491324841},
	{Name: "Basso Cambo", Lat: 43.57002423377021, Lon: 1.3922718601581425},
	// Ligne B
	{Name: "Borderouge", Lat: 43.64097358525123, Lon: 1.452298505170243},
	{Name: "Trois Cocus", Lat: 43.6382946007621, Lon: 1.4440672462982207},
	{Name: "La Vache", Lat: 43.633626034149714, Lon: 1.4349464413809196},
	{Name: "Barrière de Paris", Lat: 43.62661607705671, Lon: 1.4337725625189777},
	{Name: "Minimes", Lat: 43.62057375762567, Lon: 1.4358736943998551},
	{Name: "Canal du Midi", Lat: 43.61535261294454, Lon: 1.4337298761297568},
	{Name: "Compans-Caffarelli", Lat: 43.61067018931617, Lon: 1.4357931429011612},
	{Name: "Jeanne d'Arc", Lat: 43.608577144508914, Lon: 1.4457416228090167},
	{Name: "François Verdier", Lat: 43.6004629288437, Lon: 1.452297507755522},
	{Name: "Carmes", Lat: 43.597852135960615, Lon: 1.4454169016576714},
	{Name: "Palais de Justice", Lat: 43.59220811162977, Lon: 1.444592987028543},
	{Name: "Saint-Michel Marcel-Langer", Lat: 43.58604790672622, Lon: 1.4471783419698658},
	{Name: "Empalot", Lat: 43.57991639870424, Lon: 1.442075253939026},
	{Name: "Saint-Agne SNCF", Lat: 43.57970775512508, Lon: 1.450212702539849},
	{Name: "Saouzelong", Lat: 43.579494535801096, Lon: 1.4593810546013988},
	{Name: "Rangueil", Lat: 43.57481310670238, Lon: 1.4619417649912032},
	{Name: "Faculté de Pharmacie", Lat: 43.56803581915576, Lon: 1.4645477034498953},
	{Name: "Université-Paul-Sabatier", Lat: 43.56074285864322, Lon: 1.4624382220957395},
	{Name: "Ramonville", Lat: 43.55571867873419, Lon: 1.4757832659295467},
}
