package i18n

var messagesSV = map[string]string{
	"site.name": "Serbiska föreningen",

	"nav.home":      "Hem",
	"nav.news":      "Nyheter",
	"nav.gallery":   "Galleri",
	"nav.stories":   "Serbisk berättelse",
	"nav.contact":   "Kontakt",
	"nav.login":     "Logga in",
	"nav.logout":    "Logga ut",
	"nav.register":  "Bli medlem",
	"nav.dashboard": "Min sida",
	"nav.admin":     "Administration",

	"home.latest_news": "Senaste nytt",
	"home.story":       "Ur vårt kulturarv",
	"read_more":        "Läs mer",
	"back":             "Tillbaka",

	"news.title":     "Nyheter",
	"news.empty":     "Inga nyheter ännu.",
	"gallery.title":  "Galleri",
	"gallery.empty":  "Inga album ännu.",
	"stories.title":  "Serbisk berättelse",
	"stories.empty":  "Inga berättelser ännu.",
	"stories.source": "Källa",

	"contact.title":             "Kontakt",
	"contact.info":              "Kontaktuppgifter",
	"contact.name":              "Namn",
	"contact.email":             "E-post",
	"contact.topic":             "Ämne",
	"contact.message":           "Meddelande",
	"contact.send":              "Skicka meddelande",
	"contact.sent":              "Tack! Ditt meddelande har skickats.",
	"contact.failed":            "Det gick inte att skicka meddelandet.",
	"contact.topic.member":      "Medlemskap",
	"contact.topic.finance":     "Ekonomi",
	"contact.topic.sponsorship": "Sponsring",
	"contact.topic.other":       "Övrigt",
	"contact.address":           "Adress",
	"contact.phone":             "Telefon",
	"contact.bank":              "Bankkonto",
	"contact.org_number":        "Organisationsnummer",
	"contact.vat":               "Momsnummer",

	"login.title":      "Logga in",
	"login.username":   "Användarnamn eller e-post",
	"login.password":   "Lösenord",
	"login.submit":     "Logga in",
	"login.forgot":     "Glömt lösenordet?",
	"login.failed":     "Fel användarnamn eller lösenord.",
	"login.no_account": "Inte medlem ännu?",
	"login.welcome":    "Välkommen, %s!",

	"register.title":            "Bli medlem",
	"register.username":         "Användarnamn",
	"register.full_name":        "Fullständigt namn",
	"register.email":            "E-post",
	"register.phone":            "Telefon",
	"register.year_of_birth":    "Födelseår",
	"register.address":          "Adress",
	"register.password":         "Lösenord",
	"register.confirm_password": "Bekräfta lösenord",
	"register.submit":           "Registrera",
	"register.done":             "Registreringen är klar. Kontrollera din e-post för att verifiera kontot.",
	"register.failed":           "Registreringen misslyckades.",
	"register.parent":           "Förälder eller vårdnadshavare (för medlemmar under 18)",
	"register.parent_name":      "Förälderns namn",
	"register.parent_email":     "Förälderns e-post",
	"register.parent_phone":     "Förälderns telefon",

	"forgot.title":  "Glömt lösenord",
	"forgot.intro":  "Ange din e-post så skickar vi en länk för att återställa lösenordet.",
	"forgot.submit": "Skicka länk",
	"forgot.sent":   "Om ett konto finns för %s har en återställningslänk skickats.",
	"forgot.failed": "Det gick inte att skicka e-post.",

	"reset.title":        "Återställ lösenord",
	"reset.new_password": "Nytt lösenord",
	"reset.confirm":      "Bekräfta nytt lösenord",
	"reset.submit":       "Återställ lösenord",
	"reset.done":         "Ditt lösenord har återställts. Du kan nu logga in.",
	"reset.failed":       "Det gick inte att återställa lösenordet. Länken kan ha gått ut.",
	"reset.invalid_link": "Ogiltig återställningslänk.",

	"verify.title":    "Verifiering av e-post",
	"verify.success":  "Din e-post har verifierats.",
	"verify.failed":   "Verifieringen misslyckades. Länken är ogiltig eller har gått ut.",
	"verify.missing":  "Ingen verifieringstoken angavs.",
	"verify.go_login": "Till inloggning",

	"dashboard.title":             "Min sida",
	"dashboard.profile":           "Profil",
	"dashboard.save":              "Spara",
	"dashboard.saved":             "Profilen har uppdaterats.",
	"dashboard.save_failed":       "Det gick inte att uppdatera profilen.",
	"dashboard.invoices":          "Mina fakturor",
	"dashboard.no_invoices":       "Du har inga fakturor.",
	"dashboard.password":          "Byt lösenord",
	"dashboard.current_password":  "Nuvarande lösenord",
	"dashboard.password_changed":  "Lösenordet har ändrats.",
	"dashboard.password_failed":   "Det gick inte att byta lösenord.",
	"dashboard.cancel_membership": "Avsluta medlemskap",
	"dashboard.cancel_reason":     "Anledning (valfritt)",
	"dashboard.cancel_confirm":    "Är du säker på att du vill avsluta ditt medlemskap?",
	"dashboard.cancelled":         "Ditt medlemskap har avslutats.",
	"dashboard.cancel_failed":     "Det gick inte att avsluta medlemskapet.",

	"family.title":          "Familjemedlemmar",
	"family.add":            "Lägg till familjemedlem",
	"family.edit":           "Redigera familjemedlem",
	"family.empty":          "Inga familjemedlemmar är kopplade till ditt konto.",
	"family.under_age":      "Endast medlemmar som fyllt 18 kan lägga till familjemedlemmar.",
	"family.relationship":   "Relation",
	"family.age":            "Ålder",
	"family.remove":         "Ta bort",
	"family.added":          "Familjemedlem tillagd.",
	"family.updated":        "Familjemedlem uppdaterad.",
	"family.removed":        "Familjemedlem borttagen.",
	"family.failed":         "Det gick inte att spara familjemedlemmen.",
	"family.load_failed":    "Det gick inte att läsa in familjemedlemmar.",
	"family.primary":        "Huvudkonto",
	"family.delete_account": "Radera även medlemmens konto",
	"family.rel.child":      "Barn",
	"family.rel.spouse":     "Make/maka",
	"family.rel.friend":     "Vän",
	"family.rel.other":      "Annat",

	"invoice.amount":          "Belopp",
	"invoice.currency":        "Valuta",
	"invoice.due":             "Förfallodatum",
	"invoice.status":          "Status",
	"invoice.paid":            "Betald",
	"invoice.unpaid":          "Obetald",
	"invoice.description":     "Beskrivning",
	"invoice.file":            "Fil",
	"invoice.payment_date":    "Betalningsdatum",
	"invoice.download":        "Ladda ner",
	"invoice.download_failed": "Fakturafilen kunde inte laddas ner.",

	"admin.title":               "Administration",
	"admin.members":             "Medlemmar",
	"admin.invoices":            "Fakturor",
	"admin.families":            "Familjer",
	"admin.stats.total_members": "Antal medlemmar",
	"admin.stats.paid":          "Betalda fakturor",
	"admin.stats.unpaid":        "Obetalda fakturor",
	"admin.stats.revenue":       "Total intäkt",
	"admin.stats.overdue":       "Förfallna fakturor",

	"members.search":                "Sök på namn, e-post, användarnamn eller telefon",
	"members.filter.invoice_status": "Fakturastatus",
	"members.filter.has_family":     "Familjemedlemmar",
	"members.filter.all":            "Alla",
	"members.filter.paid":           "Allt betalt",
	"members.filter.unpaid":         "Har obetalda",
	"members.filter.none":           "Inga fakturor",
	"members.filter.yes":            "Har familj",
	"members.filter.no":             "Ingen familj",
	"members.filter.apply":          "Filtrera",
	"members.filter.clear":          "Rensa filter",
	"members.export":                "Exportera",
	"members.empty":                 "Inga medlemmar matchar.",
	"members.details":               "Detaljer",
	"members.suspend":               "Stäng av",
	"members.delete":                "Radera",
	"members.deleted":               "Medlemmen har raderats.",
	"members.delete_failed":         "Det gick inte att radera medlemmen.",
	"members.suspended":             "Medlemmen har stängts av.",
	"members.suspend_failed":        "Det gick inte att stänga av medlemmen.",
	"members.delete_confirm":        "Är du säker på att du vill radera %s?",
	"members.details_failed":        "Det gick inte att läsa in detaljer.",
	"members.export_failed":         "Exporten misslyckades.",
	"members.col.name":              "Namn",
	"members.col.email":             "E-post",
	"members.col.phone":             "Telefon",
	"members.col.group":             "Träningsgrupp",
	"members.col.role":              "Roll",

	"invoices.create":                "Skapa faktura",
	"invoices.edit":                  "Redigera faktura",
	"invoices.filter.invoice":        "Faktura",
	"invoices.filter.status":         "Betalningsstatus",
	"invoices.filter.group":          "Träningsgrupp",
	"invoices.filter.all_invoices":   "Alla fakturor",
	"invoices.filter.all_groups":     "Alla grupper",
	"invoices.mark_paid":             "Markera som betald",
	"invoices.delete":                "Radera",
	"invoices.upload":                "Ladda upp fil",
	"invoices.created":               "Fakturan har skapats.",
	"invoices.updated":               "Fakturan har uppdaterats.",
	"invoices.paid_ok":               "Fakturan har markerats som betald.",
	"invoices.deleted":               "Fakturan har raderats.",
	"invoices.uploaded":              "Filen har laddats upp.",
	"invoices.failed":                "Det gick inte att spara fakturan.",
	"invoices.load_failed":           "Det gick inte att läsa in fakturor.",
	"invoices.file_type":             "Endast PDF-, JPG- och PNG-filer upp till 10 MB tillåts.",
	"invoices.select_all":            "Välj alla",
	"invoices.select_without_unpaid": "Välj medlemmar utan obetalda fakturor",
	"invoices.clear_selection":       "Rensa val",
	"invoices.members":               "Medlemmar",
	"invoices.member_search":         "Sök medlemmar",
	"invoices.no_members":            "Inga medlemmar",
	"invoices.members_locked":        "Medlemmar kan inte ändras",
	"invoices.unknown_user":          "Okänd användare",
	"invoices.filtered_members":      "Filtrerade medlemmar",
	"invoices.export_excel":          "Exportera till Excel",
	"invoices.empty":                 "Inga fakturor matchar.",

	"pagination.showing": "Visar %d till %d av %d",
	"pagination.prev":    "Föregående",
	"pagination.next":    "Nästa",

	"error.generic":         "Något gick fel. Försök igen.",
	"error.load":            "Det gick inte att läsa in data.",
	"error.required":        "Fyll i alla obligatoriska fält.",
	"error.session_expired": "Din session har gått ut. Logga in igen.",
	"error.unavailable":     "Tjänsten är tillfälligt otillgänglig.",
	"error.forbidden":       "Du har inte åtkomst till den här sidan.",
	"error.not_found":       "Sidan hittades inte.",

	"form.cancel": "Avbryt",
	"form.save":   "Spara",
}
