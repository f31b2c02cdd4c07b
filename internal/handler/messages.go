package handler

// User-facing texts
const (
	msgTechnicalError = "Технічна помилка"

	msgNetworkDown = "Телефонна мережа не працює"
	msgNoAnswer    = "Ніхто не відповідає..."
	msgCallCount   = "Кількість дзвінків — %d."

	msgBusy             = "Виконується інша операція"
	msgNoSession        = "Операція не виконується"
	msgAddNumberStarted = "Додаємо номер %s з паролем %s.\n" +
		"Надішліть всі повідомлення відповіді.\n" +
		"Після цього підтвердіть додавання командою /done.\n" +
		"Для відміни використайте команду /cancel.\n" +
		"Для видалення одразу надішліть команду /done."
	msgBroadcastStarted = "Додаємо оголошення для капітанів.\n" +
		"Надішліть всі повідомлення оголошення.\n" +
		"Після цього підтвердіть оголошення командою /done.\n" +
		"Для відміни використайте команду /cancel."
	msgNumberAdded     = "Номер додано"
	msgNumberDeleted   = "Номер видалено"
	msgCancelled       = "Відміна"
	msgNotAdded        = "Повідомлення не додано"
	msgBroadcastEmpty  = "Оголошення порожнє, нічого не надіслано"
	msgNoCaptains      = "Капітанів немає, нічого не надіслано"
	msgSentToCaptain   = "Надіслано капітану %s"
	msgCaptainInactive = "Капітан %s не активував бота"

	msgCaptainAdded   = "Капітана додано"
	msgCaptainRemoved = "Капітана видалено"
	msgNotCaptain     = "Це не капітан"
	msgNoUsers        = "Користувачів немає"

	msgAlreadyPaused = "Телефонна мережа вже вимкнена"
	msgPaused        = "Телефонну мережу вимкнено"
	msgNotPaused     = "Телефонна мережа не вимкнена"
	msgResumed       = "Телефонну мережу увімкнено"

	msgNoLeaderboard = "Капітанів поки немає"
	msgNoProgress    = "Повідомлень поки немає"
	msgProgress      = "Прогрес %s починаючи від %s:"
	msgUnknownUser   = "Користувача %s не знайдено"
	msgAliasAdded    = "Додано"
	msgAliasRemoved  = "Видалено"

	msgUsersReloaded     = "Користувачів оновлено"
	msgPhonebookReloaded = "Телефонну книгу оновлено"

	usageCall          = "Використання: /call номер [пароль]"
	usageAddNumber     = "Використання: /add_number номер [пароль]"
	usageAddCaptain    = "Використання: /add_captain user_id username"
	usageRemoveCaptain = "Використання: /remove_captain user_id"
	usageProgress      = "Використання: /progress username"
	usageAddAlias      = "Використання: /add_alias номер імʼя/назва"
	usageRemoveAlias   = "Використання: /remove_alias номер"
)

const helpCaptain = `/help — показати це повідомлення

/call номер [пароль] — зробити дзвінок
/status — перевірити кількість дзвінків`

const helpAdmin = helpCaptain + `

/add_number номер [пароль] — додати новий номер в телефонну книгу
/broadcast — надіслати повідомлення всім капітанам
/done — завершити додавання номера чи оголошення
/cancel — скасувати додавання номера чи оголошення

Керування капітанами:
/add_captain user_id username — додати капітана
(user_id треба дізнатись за допомогою @userinfobot)
/remove_captain user_id — видалити капітана
/list_users — показати перелік всіх користувачів

Пауза:
/pause_calls — вимкнути телефонну мережу
/resume_calls — увімкнути телефонну мережу

Перегляд прогресу:
/leaderboard — таблиця лідерів
/progress username — прогрес окремого капітана
/add_alias номер імʼя/назва — додати імʼя чи назву важливого номеру
/remove_alias номер — видалити імʼя чи назву номеру

Оновлення зі сховища:
/read_users — оновити базу даних користувачів
/read_phonebook — оновити телефонну книгу`
