package services

import "github.com/coupletrack/bliss/internal/models"

// The suggestion catalogs are served verbatim; the app's voice is Italian.

type SpicyChallenge struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Duration    string `json:"duration"`
	Intensity   int    `json:"intensity"`
}

type PositionSuggestion struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Emoji         string   `json:"emoji"`
	Difficulty    string   `json:"difficulty"`
	IntimacyLevel int      `json:"intimacy_level"`
	PleasureHer   int      `json:"pleasure_her"`
	PleasureHim   int      `json:"pleasure_him"`
	Description   string   `json:"description"`
	Tips          string   `json:"tips"`
	Benefits      []string `json:"benefits"`
	BestFor       []string `json:"best_for"`
	Variation     string   `json:"variation"`
}

type QuizQuestion struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type WeeklyChallengeTemplate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
}

type WishlistCatalogItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

var WishlistCatalog = []WishlistCatalogItem{
	{ID: "massage_sensual", Title: "Massaggio Sensuale", Emoji: "💆", Description: "Un massaggio completo con oli profumati"},
	{ID: "roleplay", Title: "Gioco di Ruolo", Emoji: "🎭", Description: "Interpretare personaggi o scenari"},
	{ID: "bondage_light", Title: "Bondage Leggero", Emoji: "🎀", Description: "Bende, manette morbide, nastri"},
	{ID: "toys", Title: "Sex Toys", Emoji: "🔮", Description: "Esplorare con vibratori o altri giochi"},
	{ID: "outdoor", Title: "All'Aperto", Emoji: "🌲", Description: "Un'avventura in un luogo appartato"},
	{ID: "food_play", Title: "Giochi con Cibo", Emoji: "🍓", Description: "Panna, cioccolato, frutta..."},
	{ID: "video", Title: "Video Privato", Emoji: "📹", Description: "Registrare un momento intimo"},
	{ID: "shower", Title: "Sotto la Doccia", Emoji: "🚿", Description: "Momento di passione con l'acqua"},
	{ID: "morning", Title: "Sesso Mattutino", Emoji: "🌅", Description: "Iniziare la giornata con passione"},
	{ID: "mirror", Title: "Davanti allo Specchio", Emoji: "🪞", Description: "Guardarsi mentre fate l'amore"},
	{ID: "dress_up", Title: "Lingerie Speciale", Emoji: "👙", Description: "Indossare qualcosa di sexy"},
	{ID: "blindfold", Title: "Benda sugli Occhi", Emoji: "🙈", Description: "Amplificare gli altri sensi"},
}

var SpicyChallenges = []SpicyChallenge{
	{
		Title:       "Massaggio Sensuale",
		Description: "Scaldate olio di cocco tra le mani. Partite dalle spalle, scendete lungo la schiena con movimenti lenti e profondi. Lasciate che le mani esplorino ogni curva, avvicinandovi alle zone più sensibili senza mai toccarle direttamente. Aumentate la pressione quando sentite i muscoli rilassarsi...",
		Category:    "romantic",
		Duration:    "30 min",
		Intensity:   2,
	},
	{
		Title:       "Doccia Bollente",
		Description: "Entrate insieme sotto l'acqua calda. Insaponatevi a vicenda partendo dal collo, scendendo lentamente sul petto. Lasciate che il vapore vi avvolga mentre le vostre mani scivolano sul corpo bagnato dell'altro. Baciatevi sotto il getto d'acqua...",
		Category:    "spicy",
		Duration:    "20 min",
		Intensity:   3,
	},
	{
		Title:       "Bendati e Vulnerabili",
		Description: "Uno di voi viene bendato e disteso sul letto. L'altro ha il controllo totale: usa le dita, le labbra, piume, cubetti di ghiaccio. Alternare sensazioni calde e fredde, sfioramenti leggeri e tocchi più decisi. Chi è bendato deve solo... sentire.",
		Category:    "spicy",
		Duration:    "45 min",
		Intensity:   4,
	},
	{
		Title:       "Striptease Privato",
		Description: "Preparate la stanza: luci soffuse, musica sensuale. Uno dei due si spoglia lentamente per l'altro, mantenendo il contatto visivo. Ogni capo rimosso è un invito. Chi guarda non può toccare... finché non viene concesso il permesso.",
		Category:    "spicy",
		Duration:    "15 min",
		Intensity:   3,
	},
	{
		Title:       "Gioco del Ghiaccio",
		Description: "Tenete un cubetto di ghiaccio in bocca e tracciate linee sul corpo del partner: dal collo al petto, sulla pancia, lungo l'interno coscia. Alternate con baci caldi. Il contrasto tra freddo e caldo farà impazzire i sensi...",
		Category:    "spicy",
		Duration:    "20 min",
		Intensity:   4,
	},
	{
		Title:       "Lettera Erotica",
		Description: "Scrivete una lettera descrivendo nel dettaglio la vostra fantasia più segreta con il partner. Cosa vorreste fare, dove, come. Scambiatevi le lettere e leggetele ad alta voce, poi... realizzate almeno una delle fantasie.",
		Category:    "adventure",
		Duration:    "60 min",
		Intensity:   4,
	},
	{
		Title:       "Maestro e Allieva/o",
		Description: "Uno dei due è l'insegnante esperto, l'altro il principiante curioso. Il maestro guida ogni movimento, spiega cosa fare e come, corregge la 'tecnica'. Il gioco di potere e la guida vocale aumentano l'eccitazione...",
		Category:    "adventure",
		Duration:    "45 min",
		Intensity:   4,
	},
	{
		Title:       "Countdown dell'Attesa",
		Description: "Per tutto il giorno, mandatevi messaggi sempre più espliciti su cosa farete la sera. Descrizioni dettagliate, anticipazioni. Vietatevi di toccarvi fino a sera. L'attesa costruisce un desiderio esplosivo...",
		Category:    "romantic",
		Duration:    "tutto il giorno",
		Intensity:   3,
	},
	{
		Title:       "Esplorazione Sensoriale",
		Description: "Raccogliete oggetti con texture diverse: seta, pelliccia sintetica, piume, corda morbida. Ad occhi chiusi, il partner traccia percorsi sul vostro corpo con ogni materiale. Indovinate cosa sta usando mentre vi abbandonate alle sensazioni.",
		Category:    "spicy",
		Duration:    "30 min",
		Intensity:   3,
	},
	{
		Title:       "Svegliarsi Insieme",
		Description: "Svegliate il partner con baci leggeri sul collo, carezze sotto le coperte. Niente fretta, niente parole. Lasciate che il desiderio cresca lentamente nel dormiveglia, quando i sensi sono ancora intorpiditi e tutto è più intenso...",
		Category:    "romantic",
		Duration:    "30 min",
		Intensity:   2,
	},
	{
		Title:       "Solo Mani",
		Description: "Per tutta la sessione, usate solo le mani. Niente labbra, niente altro. Esplorate ogni centimetro del corpo del partner usando solo il tatto. Scoprirete zone erogene che non sapevate di avere...",
		Category:    "spicy",
		Duration:    "40 min",
		Intensity:   3,
	},
	{
		Title:       "Specchio delle Brame",
		Description: "Posizionatevi davanti a uno specchio. Guardatevi mentre vi amate. Osservate le espressioni del partner, i movimenti dei vostri corpi insieme. Guardarsi aumenta incredibilmente l'intensità...",
		Category:    "adventure",
		Duration:    "30 min",
		Intensity:   4,
	},
}

var PositionSuggestions = []PositionSuggestion{
	{
		ID: "missionary", Name: "Missionario Classico", Emoji: "💑", Difficulty: "facile",
		IntimacyLevel: 5, PleasureHer: 3, PleasureHim: 4,
		Description: "Lui sopra, lei sotto. Faccia a faccia, perfetto per baciarsi e guardarsi negli occhi.",
		Tips:        "Lei può avvolgere le gambe intorno a lui per maggiore profondità. Cuscino sotto i fianchi di lei per angolazione migliore.",
		Benefits:    []string{"Massimo contatto visivo", "Facilità di baci", "Controllo del ritmo", "Intimità emotiva"},
		BestFor:     []string{"Romanticismo", "Prima volta", "Connessione profonda"},
		Variation:   "Lei alza le gambe sulle spalle di lui per sensazioni più intense",
	},
	{
		ID: "cowgirl", Name: "Amazzone (Cowgirl)", Emoji: "🤠", Difficulty: "facile",
		IntimacyLevel: 4, PleasureHer: 5, PleasureHim: 4,
		Description: "Lei sopra, seduta su di lui. Ha il controllo totale del ritmo e della profondità.",
		Tips:        "Lei può appoggiarsi in avanti per stimolazione clitoridea, o indietro per sensazioni diverse. Lui può stimolarla con le mani.",
		Benefits:    []string{"Lei controlla l'angolazione", "Stimolazione punto G", "Vista eccitante per lui", "Meno fatica per lui"},
		BestFor:     []string{"Lei che vuole controllare", "Stimolazione clitoridea", "Sessioni lunghe"},
		Variation:   "Amazzone inversa: lei girata di spalle, vista diversa e sensazioni nuove",
	},
	{
		ID: "doggy", Name: "Pecorina", Emoji: "🔥", Difficulty: "facile",
		IntimacyLevel: 2, PleasureHer: 4, PleasureHim: 5,
		Description: "Lei a quattro zampe, lui dietro. Permette penetrazione profonda e stimolazione intensa.",
		Tips:        "Lei può abbassare il petto sul letto per angolazione migliore. Lui può stimolare il clitoride con la mano.",
		Benefits:    []string{"Penetrazione profonda", "Stimolazione punto G", "Sensazione di dominanza", "Accesso per stimolazione manuale"},
		BestFor:     []string{"Passione intensa", "Varietà", "Stimolazione profonda"},
		Variation:   "Lei completamente distesa sulla pancia, più intimo e meno faticoso",
	},
	{
		ID: "spoon", Name: "Cucchiaio", Emoji: "🥄", Difficulty: "facile",
		IntimacyLevel: 5, PleasureHer: 4, PleasureHim: 4,
		Description: "Entrambi su un fianco, lui dietro di lei. Intimo, rilassante, perfetto per la mattina.",
		Tips:        "Lei può alzare la gamba superiore per facilitare l'accesso. Lui può accarezzarla ovunque.",
		Benefits:    []string{"Molto intimo", "Poco faticoso", "Baci sul collo", "Mani libere per carezze"},
		BestFor:     []string{"Mattina pigra", "Gravidanza", "Intimità romantica", "Sessioni lente"},
		Variation:   "Lei si gira parzialmente sulla schiena per baci sul viso",
	},
	{
		ID: "lotus", Name: "Loto (Yab-Yum)", Emoji: "🧘", Difficulty: "medio",
		IntimacyLevel: 5, PleasureHer: 4, PleasureHim: 3,
		Description: "Lui seduto a gambe incrociate, lei in braccio a lui avvolta intorno. Massima connessione.",
		Tips:        "Muovetevi insieme con un ritmo lento e ondulatorio. Respirate insieme. Guardarsi negli occhi intensifica tutto.",
		Benefits:    []string{"Connessione tantrica", "Intimità massima", "Respiro sincronizzato", "Contatto totale del corpo"},
		BestFor:     []string{"Connessione spirituale", "Intimità profonda", "Sesso tantrico"},
		Variation:   "Lui può sdraiarsi leggermente indietro appoggiandosi sulle mani",
	},
	{
		ID: "69", Name: "69", Emoji: "🔄", Difficulty: "medio",
		IntimacyLevel: 3, PleasureHer: 5, PleasureHim: 5,
		Description: "Piacere orale simultaneo. Uno sopra l'altro, testa ai piedi dell'altro.",
		Tips:        "Comunicare cosa piace. Chi sta sopra controlla la pressione. Alternare chi sta sopra.",
		Benefits:    []string{"Piacere simultaneo", "Dare e ricevere insieme", "Molto eccitante", "Ottimo preliminare"},
		BestFor:     []string{"Preliminari intensi", "Piacere reciproco", "Varietà"},
		Variation:   "Versione laterale: entrambi su un fianco, più comodo per sessioni lunghe",
	},
	{
		ID: "standing", Name: "In Piedi", Emoji: "🚿", Difficulty: "difficile",
		IntimacyLevel: 2, PleasureHer: 3, PleasureHim: 4,
		Description: "Entrambi in piedi, lei appoggiata al muro o lui che la solleva. Spontaneo e passionale.",
		Tips:        "Un dislivello di altezza aiuta. Lei può alzare una gamba. Un muro dà supporto.",
		Benefits:    []string{"Molto spontaneo", "Passionale", "Perfetto per doccia", "Sensazione di urgenza"},
		BestFor:     []string{"Momenti spontanei", "Doccia", "Quando non potete aspettare"},
		Variation:   "Lei di spalle al muro, avvolta intorno a lui che la sostiene",
	},
	{
		ID: "reverse_cowgirl", Name: "Amazzone Inversa", Emoji: "🔄", Difficulty: "medio",
		IntimacyLevel: 2, PleasureHer: 4, PleasureHim: 5,
		Description: "Come l'amazzone ma lei girata di spalle. Vista eccitante e sensazioni diverse.",
		Tips:        "Lei può appoggiarsi sulle ginocchia di lui. Lui ha le mani libere per accarezzare schiena e glutei.",
		Benefits:    []string{"Vista eccitante per lui", "Angolazione diversa", "Lei mantiene il controllo", "Sensazioni nuove"},
		BestFor:     []string{"Varietà visiva", "Sperimentazione", "Stimolazione diversa"},
		Variation:   "Lei si appoggia in avanti tra le gambe di lui",
	},
	{
		ID: "seated", Name: "Sedia del Piacere", Emoji: "🪑", Difficulty: "medio",
		IntimacyLevel: 3, PleasureHer: 4, PleasureHim: 4,
		Description: "Lui seduto su una sedia, lei sopra di lui. Può essere ovunque ci sia una sedia.",
		Tips:        "Sedia senza braccioli funziona meglio. Lei può usare i piedi per terra come leva.",
		Benefits:    []string{"Versatile", "Si può fare ovunque", "Buona penetrazione", "Mani libere"},
		BestFor:     []string{"Fuori dalla camera", "Spontaneità", "Varietà di location"},
		Variation:   "Lei di spalle per sensazioni diverse",
	},
	{
		ID: "prone", Name: "Distesa Prona", Emoji: "😴", Difficulty: "facile",
		IntimacyLevel: 3, PleasureHer: 5, PleasureHim: 4,
		Description: "Lei distesa a pancia in giù, gambe unite. Lui sopra o dietro. Molto stretta e intensa.",
		Tips:        "Un cuscino sotto i fianchi di lei aiuta. Lui può sussurrarle all'orecchio.",
		Benefits:    []string{"Sensazione molto stretta", "Stimolazione intensa", "Lui può baciarle il collo", "Rilassante per lei"},
		BestFor:     []string{"Sensazioni intense", "Stimolazione clitoridea indiretta", "Intimità"},
		Variation:   "Lei con le gambe leggermente aperte per accesso più facile",
	},
	{
		ID: "legs_up", Name: "Gambe in Alto", Emoji: "🦵", Difficulty: "medio",
		IntimacyLevel: 4, PleasureHer: 5, PleasureHim: 4,
		Description: "Missionario con le gambe di lei sulle spalle di lui. Penetrazione molto profonda.",
		Tips:        "Iniziare lentamente, la penetrazione è molto profonda. Cuscino sotto i fianchi aiuta.",
		Benefits:    []string{"Penetrazione profondissima", "Stimolazione punto G", "Contatto visivo", "Molto intenso"},
		BestFor:     []string{"Stimolazione profonda", "Intensità", "Orgasmo vaginale"},
		Variation:   "Una gamba sola sulla spalla per angolazione asimmetrica",
	},
	{
		ID: "face_to_face", Name: "Faccia a Faccia Seduti", Emoji: "👫", Difficulty: "medio",
		IntimacyLevel: 5, PleasureHer: 4, PleasureHim: 3,
		Description: "Entrambi seduti uno di fronte all'altro, lei avvolta intorno a lui. Massimo contatto.",
		Tips:        "Muoversi insieme a ritmo lento. Respirare insieme. Mantenere il contatto visivo.",
		Benefits:    []string{"Intimità massima", "Contatto totale", "Molto romantico", "Connessione profonda"},
		BestFor:     []string{"Romanticismo", "Connessione emotiva", "Sesso lento e intenso"},
		Variation:   "Su un divano o bordo del letto per più supporto",
	},
}

var CompatibilityQuestions = []QuizQuestion{
	{ID: 0, Question: "Qual è il momento ideale per l'intimità?", Options: []string{"Mattina", "Pomeriggio", "Sera", "Notte fonda"}},
	{ID: 1, Question: "Quanto è importante il romanticismo prima?", Options: []string{"Fondamentale", "Piacevole", "Non necessario", "Dipende"}},
	{ID: 2, Question: "Preferisci sessioni lunghe o intense?", Options: []string{"Lunghe e slow", "Intense e veloci", "Un mix", "Dipende dall'umore"}},
	{ID: 3, Question: "Quanto sei aperto a sperimentare?", Options: []string{"Molto aperto", "Abbastanza", "Poco", "Preferisco il classico"}},
	{ID: 4, Question: "Cosa ti eccita di più?", Options: []string{"Parole dolci", "Contatto fisico", "Atmosfera", "Spontaneità"}},
	{ID: 5, Question: "Quanto spesso vorresti stare insieme?", Options: []string{"Ogni giorno", "3-4 volte a settimana", "1-2 volte a settimana", "Quando capita"}},
	{ID: 6, Question: "Preferisci iniziare tu o che inizi il partner?", Options: []string{"Io sempre", "Il partner", "A turno", "Chi ha voglia"}},
	{ID: 7, Question: "Luogo preferito?", Options: []string{"Camera da letto", "Divano", "Doccia/Bagno", "Ovunque!"}},
	{ID: 8, Question: "Musica durante?", Options: []string{"Sempre", "A volte", "Mai", "Solo playlist speciale"}},
	{ID: 9, Question: "Quanto è importante la comunicazione durante?", Options: []string{"Molto, parliamo sempre", "Abbastanza", "Poco, preferiamo il silenzio", "Solo feedback base"}},
	{ID: 10, Question: "Dopo, cosa preferisci?", Options: []string{"Coccole lunghe", "Dormire subito", "Chiacchierare", "Snack time!"}},
	{ID: 11, Question: "Fantasy: cosa ti intriga di più?", Options: []string{"Roleplay", "Nuovi posti", "Toys", "Niente di particolare"}},
}

var WeeklyChallengePool = []WeeklyChallengeTemplate{
	{Title: "Settimana del Massaggio", Description: "Ogni sera, 10 minuti di massaggio a turno prima di dormire", Difficulty: "facile"},
	{Title: "Complimenti Quotidiani", Description: "Ogni giorno, ditevi 3 cose che amate dell'altro", Difficulty: "facile"},
	{Title: "No Phone Zone", Description: "Almeno 2 sere questa settimana: telefoni spenti dopo cena", Difficulty: "medio"},
	{Title: "Sorpresa Romantica", Description: "Organizza una sorpresa per il partner entro la settimana", Difficulty: "medio"},
	{Title: "Nuova Posizione", Description: "Provate almeno una posizione nuova questa settimana", Difficulty: "spicy"},
	{Title: "Appuntamento Settimanale", Description: "Pianificate e fate un vero appuntamento, come ai primi tempi", Difficulty: "facile"},
	{Title: "Gioco di Ruolo", Description: "Inventate insieme un piccolo scenario e interpretatelo", Difficulty: "spicy"},
	{Title: "Settimana Spontanea", Description: "Almeno 2 momenti completamente spontanei, non pianificati", Difficulty: "medio"},
	{Title: "Esplorazione Sensoriale", Description: "Usate bende, piume, ghiaccio... esplorate i sensi", Difficulty: "spicy"},
	{Title: "Lettere d'Amore", Description: "Scrivetevi una lettera (anche piccante) e scambiatevela a fine settimana", Difficulty: "romantico"},
}

// LoveNoteTemplates are ready-made notes offered in the composer, keyed by
// category.
var LoveNoteTemplates = map[string][]string{
	models.NoteCategorySweet: {
		"Sei la cosa più bella della mia giornata 💕",
		"Non vedo l'ora di tornare a casa da te",
		"Pensavo a te... come sempre",
		"Mi manchi già, anche se ci siamo visti stamattina",
		"Sei il mio pensiero preferito",
	},
	models.NoteCategorySpicy: {
		"Non riesco a smettere di pensare a ieri notte... 🔥",
		"Ho delle idee per stasera...",
		"Mi fai impazzire, lo sai?",
		"Conto i minuti fino a stasera",
		"Ho bisogno di te. Adesso.",
	},
	models.NoteCategoryFunny: {
		"Se fossi un vegetale, saresti un carote-ino 🥕",
		"Ti amo più della pizza. E sai quanto amo la pizza.",
		"Sei la mia persona preferita da infastidire",
		"Grazie per sopportare la mia follia",
		"Reminder: sono figo/a e tu sei fortunato/a",
	},
	models.NoteCategoryRomantic: {
		"In un universo infinito, ho trovato te ✨",
		"Ogni giorno con te è un regalo",
		"Sei il mio per sempre",
		"Mi hai rubato il cuore e non lo rivoglio indietro",
		"Con te, tutto ha senso",
	},
}
