package i18n

// messagesSR is written in Latin script; the Cyrillic catalog is derived
// from it by transliteration.
var messagesSR = map[string]string{
	"site.name": "Srpsko udruženje",

	"nav.home":      "Početna",
	"nav.news":      "Vesti",
	"nav.gallery":   "Galerija",
	"nav.stories":   "Srpska priča",
	"nav.contact":   "Kontakt",
	"nav.login":     "Prijava",
	"nav.logout":    "Odjava",
	"nav.register":  "Postani član",
	"nav.dashboard": "Moja stranica",
	"nav.admin":     "Administracija",

	"home.latest_news": "Najnovije vesti",
	"home.story":       "Iz naše baštine",
	"read_more":        "Pročitaj više",
	"back":             "Nazad",

	"news.title":     "Vesti",
	"news.empty":     "Još nema vesti.",
	"gallery.title":  "Galerija",
	"gallery.empty":  "Još nema albuma.",
	"stories.title":  "Srpska priča",
	"stories.empty":  "Još nema priča.",
	"stories.source": "Izvor",

	"contact.title":             "Kontakt",
	"contact.info":              "Kontakt podaci",
	"contact.name":              "Ime",
	"contact.email":             "Imejl",
	"contact.topic":             "Tema",
	"contact.message":           "Poruka",
	"contact.send":              "Pošalji poruku",
	"contact.sent":              "Hvala! Vaša poruka je poslata.",
	"contact.failed":            "Slanje poruke nije uspelo.",
	"contact.topic.member":      "Članstvo",
	"contact.topic.finance":     "Finansije",
	"contact.topic.sponsorship": "Sponzorstvo",
	"contact.topic.other":       "Ostalo",
	"contact.address":           "Adresa",
	"contact.phone":             "Telefon",
	"contact.bank":              "Bankovni račun",
	"contact.org_number":        "Matični broj",
	"contact.vat":               "PDV broj",

	"login.title":      "Prijava",
	"login.username":   "Korisničko ime ili imejl",
	"login.password":   "Lozinka",
	"login.submit":     "Prijavi se",
	"login.forgot":     "Zaboravili ste lozinku?",
	"login.failed":     "Pogrešno korisničko ime ili lozinka.",
	"login.no_account": "Još niste član?",
	"login.welcome":    "Dobro došli, %s!",

	"register.title":            "Postani član",
	"register.username":         "Korisničko ime",
	"register.full_name":        "Ime i prezime",
	"register.email":            "Imejl",
	"register.phone":            "Telefon",
	"register.year_of_birth":    "Godina rođenja",
	"register.address":          "Adresa",
	"register.password":         "Lozinka",
	"register.confirm_password": "Potvrdite lozinku",
	"register.submit":           "Registruj se",
	"register.done":             "Registracija je završena. Proverite imejl da biste potvrdili nalog.",
	"register.failed":           "Registracija nije uspela.",
	"register.parent":           "Roditelj ili staratelj (za članove mlađe od 18 godina)",
	"register.parent_name":      "Ime roditelja",
	"register.parent_email":     "Imejl roditelja",
	"register.parent_phone":     "Telefon roditelja",

	"forgot.title":  "Zaboravljena lozinka",
	"forgot.intro":  "Unesite imejl i poslaćemo vam link za promenu lozinke.",
	"forgot.submit": "Pošalji link",
	"forgot.sent":   "Ako postoji nalog za %s, link za promenu lozinke je poslat.",
	"forgot.failed": "Slanje imejla nije uspelo.",

	"reset.title":        "Promena lozinke",
	"reset.new_password": "Nova lozinka",
	"reset.confirm":      "Potvrdite novu lozinku",
	"reset.submit":       "Promeni lozinku",
	"reset.done":         "Lozinka je promenjena. Sada se možete prijaviti.",
	"reset.failed":       "Promena lozinke nije uspela. Link je možda istekao.",
	"reset.invalid_link": "Neispravan link za promenu lozinke.",

	"verify.title":    "Potvrda imejla",
	"verify.success":  "Vaš imejl je potvrđen.",
	"verify.failed":   "Potvrda nije uspela. Link je neispravan ili je istekao.",
	"verify.missing":  "Nedostaje token za potvrdu.",
	"verify.go_login": "Idi na prijavu",

	"dashboard.title":             "Moja stranica",
	"dashboard.profile":           "Profil",
	"dashboard.save":              "Sačuvaj",
	"dashboard.saved":             "Profil je ažuriran.",
	"dashboard.save_failed":       "Ažuriranje profila nije uspelo.",
	"dashboard.invoices":          "Moje fakture",
	"dashboard.no_invoices":       "Nemate faktura.",
	"dashboard.password":          "Promena lozinke",
	"dashboard.current_password":  "Trenutna lozinka",
	"dashboard.password_changed":  "Lozinka je promenjena.",
	"dashboard.password_failed":   "Promena lozinke nije uspela.",
	"dashboard.cancel_membership": "Otkaži članstvo",
	"dashboard.cancel_reason":     "Razlog (opciono)",
	"dashboard.cancel_confirm":    "Da li ste sigurni da želite da otkažete članstvo?",
	"dashboard.cancelled":         "Vaše članstvo je otkazano.",
	"dashboard.cancel_failed":     "Otkazivanje članstva nije uspelo.",

	"family.title":          "Članovi porodice",
	"family.add":            "Dodaj člana porodice",
	"family.edit":           "Izmeni člana porodice",
	"family.empty":          "Nema članova porodice povezanih sa vašim nalogom.",
	"family.under_age":      "Samo članovi sa 18 ili više godina mogu dodavati članove porodice.",
	"family.relationship":   "Srodstvo",
	"family.age":            "Godine",
	"family.remove":         "Ukloni",
	"family.added":          "Član porodice je dodat.",
	"family.updated":        "Član porodice je izmenjen.",
	"family.removed":        "Član porodice je uklonjen.",
	"family.failed":         "Čuvanje člana porodice nije uspelo.",
	"family.load_failed":    "Učitavanje članova porodice nije uspelo.",
	"family.primary":        "Glavni nalog",
	"family.delete_account": "Obriši i nalog člana",
	"family.rel.child":      "Dete",
	"family.rel.spouse":     "Supružnik",
	"family.rel.friend":     "Prijatelj",
	"family.rel.other":      "Ostalo",

	"invoice.amount":          "Iznos",
	"invoice.currency":        "Valuta",
	"invoice.due":             "Rok plaćanja",
	"invoice.status":          "Status",
	"invoice.paid":            "Plaćeno",
	"invoice.unpaid":          "Neplaćeno",
	"invoice.description":     "Opis",
	"invoice.file":            "Fajl",
	"invoice.payment_date":    "Datum plaćanja",
	"invoice.download":        "Preuzmi",
	"invoice.download_failed": "Preuzimanje fakture nije uspelo.",

	"admin.title":               "Administracija",
	"admin.members":             "Članovi",
	"admin.invoices":            "Fakture",
	"admin.families":            "Porodice",
	"admin.stats.total_members": "Ukupno članova",
	"admin.stats.paid":          "Plaćene fakture",
	"admin.stats.unpaid":        "Neplaćene fakture",
	"admin.stats.revenue":       "Ukupan prihod",
	"admin.stats.overdue":       "Dospele fakture",

	"members.search":                "Pretraga po imenu, imejlu, korisničkom imenu ili telefonu",
	"members.filter.invoice_status": "Status faktura",
	"members.filter.has_family":     "Članovi porodice",
	"members.filter.all":            "Svi",
	"members.filter.paid":           "Sve plaćeno",
	"members.filter.unpaid":         "Ima neplaćenih",
	"members.filter.none":           "Bez faktura",
	"members.filter.yes":            "Ima porodicu",
	"members.filter.no":             "Bez porodice",
	"members.filter.apply":          "Filtriraj",
	"members.filter.clear":          "Poništi filtere",
	"members.export":                "Izvoz",
	"members.empty":                 "Nema članova koji odgovaraju.",
	"members.details":               "Detalji",
	"members.suspend":               "Suspenduj",
	"members.delete":                "Obriši",
	"members.deleted":               "Član je obrisan.",
	"members.delete_failed":         "Brisanje člana nije uspelo.",
	"members.suspended":             "Član je suspendovan.",
	"members.suspend_failed":        "Suspenzija člana nije uspela.",
	"members.delete_confirm":        "Da li ste sigurni da želite da obrišete %s?",
	"members.details_failed":        "Učitavanje detalja nije uspelo.",
	"members.export_failed":         "Izvoz članova nije uspeo.",
	"members.col.name":              "Ime",
	"members.col.email":             "Imejl",
	"members.col.phone":             "Telefon",
	"members.col.group":             "Grupa za trening",
	"members.col.role":              "Uloga",

	"invoices.create":                "Napravi fakturu",
	"invoices.edit":                  "Izmeni fakturu",
	"invoices.filter.invoice":        "Faktura",
	"invoices.filter.status":         "Status plaćanja",
	"invoices.filter.group":          "Grupa za trening",
	"invoices.filter.all_invoices":   "Sve fakture",
	"invoices.filter.all_groups":     "Sve grupe",
	"invoices.mark_paid":             "Označi kao plaćeno",
	"invoices.delete":                "Obriši",
	"invoices.upload":                "Otpremi fajl",
	"invoices.created":               "Faktura je napravljena.",
	"invoices.updated":               "Faktura je izmenjena.",
	"invoices.paid_ok":               "Faktura je označena kao plaćena.",
	"invoices.deleted":               "Faktura je obrisana.",
	"invoices.uploaded":              "Fajl je otpremljen.",
	"invoices.failed":                "Čuvanje fakture nije uspelo.",
	"invoices.load_failed":           "Učitavanje faktura nije uspelo.",
	"invoices.file_type":             "Dozvoljeni su samo PDF, JPG i PNG fajlovi do 10 MB.",
	"invoices.select_all":            "Izaberi sve",
	"invoices.select_without_unpaid": "Izaberi članove bez neplaćenih faktura",
	"invoices.clear_selection":       "Poništi izbor",
	"invoices.members":               "Članovi",
	"invoices.member_search":         "Pretraga članova",
	"invoices.no_members":            "Nema članova",
	"invoices.members_locked":        "Članovi se ne mogu menjati",
	"invoices.unknown_user":          "Nepoznat korisnik",
	"invoices.filtered_members":      "Filtrirani članovi",
	"invoices.export_excel":          "Izvezi u Excel",
	"invoices.empty":                 "Nema faktura koje odgovaraju.",

	"pagination.showing": "Prikazano %d do %d od %d",
	"pagination.prev":    "Prethodna",
	"pagination.next":    "Sledeća",

	"error.generic":         "Došlo je do greške. Pokušajte ponovo.",
	"error.load":            "Učitavanje podataka nije uspelo.",
	"error.required":        "Popunite sva obavezna polja.",
	"error.session_expired": "Vaša sesija je istekla. Prijavite se ponovo.",
	"error.unavailable":     "Servis je privremeno nedostupan.",
	"error.forbidden":       "Nemate pristup ovoj stranici.",
	"error.not_found":       "Stranica nije pronađena.",

	"form.cancel": "Otkaži",
	"form.save":   "Sačuvaj",
}
