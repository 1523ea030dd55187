package civilization

type Government string
type Economy string
type Religion string
type Language string

var Governments = []Government{"democracy", "monarchy", "theocracy", "republic", "dictatorship", "anarchy"}

var Economies = []Economy{"capitalist", "socialist", "mixed", "planned"}

var Religions = []Religion{"none", "polytheism", "monotheism", "animism", "philosophy"}

var Languages = []Language{"Galactic Basic", "Proto", "Lingua", "Xeno", "Synth"}
