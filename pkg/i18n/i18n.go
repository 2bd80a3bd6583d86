package i18n

type Messages struct {
	AppTitle        string
	ChooseChain     string
	ChainOption     string // "%d) %s"
	PressEnterExit  string
	UnknownCommand  string
	WalletHeader    string // "%s wallet — %d wallet(s)"
	MenuAdd         string
	MenuList        string
	MenuToggle      string
	MenuDelete      string
	MenuClear       string
	MenuSeed        string
	MenuImport      string
	MenuSave        string
	MenuLoad        string
	MenuBatch       string
	NoWallets       string
	WalletTitle     string // "Wallet %d"
	PublicKey       string
	PrivateKey      string
	Address         string
	Path            string
	SeedPhrase      string
	SeedHidden      string
	AskIndex        string
	AskMnemonic     string
	AskPath         string // "%s" = default
	AskCount        string
	Added           string // "Wallet %d added"
	Deleted         string
	Cleared         string
	Saved           string // "%d wallet(s) saved to %s"
	Loaded          string // "%d wallet(s) loaded from %s"
	LoadSkipped     string // "%d wallet(s) skipped: not %s"
	BatchDone       string // "%d wallet(s) written to %s"
	Failed          string // "Error: %v"
	RevealOn        string
	RevealOff       string
	ShowSeedConfirm string
}

func Get(lang string) Messages {
	switch lang {
	case "ru":
		return Messages{
			AppTitle:        "Phase — генератор кошельков",
			ChooseChain:     "Выбери блокчейн:",
			ChainOption:     "%d) %s\n",
			PressEnterExit:  "Enter — выход",
			UnknownCommand:  "Неизвестная команда:",
			WalletHeader:    "%s кошелёк — кошельков: %d\n",
			MenuAdd:         "1) Добавить кошелёк",
			MenuList:        "2) Показать кошельки",
			MenuToggle:      "3) Показать/скрыть приватный ключ",
			MenuDelete:      "4) Удалить кошелёк",
			MenuClear:       "5) Удалить все кошельки",
			MenuSeed:        "6) Показать seed-фразу",
			MenuImport:      "7) Восстановить из мнемоники",
			MenuSave:        "8) Сохранить в файл",
			MenuLoad:        "9) Загрузить из файла",
			MenuBatch:       "10) Пакетная генерация",
			NoWallets:       "Кошельков нет",
			WalletTitle:     "Кошелёк %d\n",
			PublicKey:       "Публичный ключ",
			PrivateKey:      "Приватный ключ",
			Address:         "Адрес",
			Path:            "Путь",
			SeedPhrase:      "Seed-фраза",
			SeedHidden:      "Seed-фраза скрыта",
			AskIndex:        "Номер кошелька: ",
			AskMnemonic:     "Мнемоника: ",
			AskPath:         "Файл (по умолчанию %s): ",
			AskCount:        "Сколько кошельков: ",
			Added:           "Кошелёк %d добавлен\n",
			Deleted:         "Кошелёк удалён",
			Cleared:         "Все кошельки удалены",
			Saved:           "Сохранено кошельков: %d в %s\n",
			Loaded:          "Загружено кошельков: %d из %s\n",
			LoadSkipped:     "Пропущено кошельков: %d (не %s)\n",
			BatchDone:       "Записано кошельков: %d в %s\n",
			Failed:          "Ошибка: %v\n",
			RevealOn:        "Приватный ключ показан",
			RevealOff:       "Приватный ключ скрыт",
			ShowSeedConfirm: "Показать seed-фразу? (y/n): ",
		}
	default: // "en"
		return Messages{
			AppTitle:        "Phase — wallet generator",
			ChooseChain:     "Choose a blockchain to get started:",
			ChainOption:     "%d) %s\n",
			PressEnterExit:  "Press enter to exit",
			UnknownCommand:  "Unknown command:",
			WalletHeader:    "%s wallet — %d wallet(s)\n",
			MenuAdd:         "1) Add wallet",
			MenuList:        "2) List wallets",
			MenuToggle:      "3) Show/hide private key",
			MenuDelete:      "4) Delete wallet",
			MenuClear:       "5) Clear wallets",
			MenuSeed:        "6) Show seed phrase",
			MenuImport:      "7) Restore from mnemonic",
			MenuSave:        "8) Save to file",
			MenuLoad:        "9) Load from file",
			MenuBatch:       "10) Batch generate",
			NoWallets:       "No wallets yet",
			WalletTitle:     "Wallet %d\n",
			PublicKey:       "Public Key",
			PrivateKey:      "Private Key",
			Address:         "Address",
			Path:            "Path",
			SeedPhrase:      "Secret Recovery Phrase",
			SeedHidden:      "Secret Recovery Phrase hidden",
			AskIndex:        "Wallet number: ",
			AskMnemonic:     "Mnemonic: ",
			AskPath:         "File (default %s): ",
			AskCount:        "How many wallets: ",
			Added:           "Wallet %d added\n",
			Deleted:         "Wallet deleted",
			Cleared:         "All wallets cleared",
			Saved:           "%d wallet(s) saved to %s\n",
			Loaded:          "%d wallet(s) loaded from %s\n",
			LoadSkipped:     "%d wallet(s) skipped: not %s\n",
			BatchDone:       "%d wallet(s) written to %s\n",
			Failed:          "Error: %v\n",
			RevealOn:        "Private key shown",
			RevealOff:       "Private key hidden",
			ShowSeedConfirm: "Show seed phrase? (y/n): ",
		}
	}
}
