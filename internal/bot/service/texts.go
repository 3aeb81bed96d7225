package service

const (
	textWelcome = `Добро пожаловать! Я помогу получить отчёт о продажах ваших магазинов Wildberries.

/addshop - добавить магазин
/delshop - удалить магазин
/shops - список магазинов
/report - отчёт о продажах
/cancel - отменить текущее действие
/help - справка`

	textIdle            = "Введите команду или /help для просмотра доступных команд."
	textUnknownCommand  = "Неизвестная команда. Введите /help для просмотра доступных команд."
	textCancelled       = "Действие отменено."
	textNothingToCancel = "Нет активного действия."
	textSessionExpired  = "Эта кнопка устарела. Начните заново с нужной команды."

	textAskCredential     = "Введите API ключ вашего магазина Wildberries:"
	textCredentialInvalid = "Неверный API ключ. Попробуйте снова."
	textAskShopName       = "API ключ валиден. Теперь введите имя магазина:"
	textEmptyShopName     = "Имя магазина не может быть пустым. Введите имя магазина:"
	textShopNameTooLong   = "Имя магазина слишком длинное. Введите имя покороче:"
	textShopSaved         = "API ключ и имя магазина «%s» успешно сохранены."

	textNoShops          = "Нет сохранённых магазинов."
	textShopList         = "Сохранённые магазины:\n%s"
	textNoShopsToDelete  = "Нет сохранённых магазинов для удаления."
	textChooseShopDelete = "Выберите магазин для удаления:"
	textShopNotFound     = "Магазин «%s» не найден."
	textConfirmDelete    = "Удалить магазин «%s»?"
	textChooseConfirm    = "Подтвердите или отмените удаление кнопками ниже."
	textShopDeleted      = "Магазин «%s» удалён."
	textDeleteCancelled  = "Удаление отменено."
	textTypeShopName     = "Магазины с длинными именами не поместились на кнопки, их имя можно ввести сообщением."

	textNoShopsForReport  = "Сначала добавьте магазины с помощью /addshop."
	textChooseShopReport  = "Выберите магазин для отчёта:"
	textShopUnavailable   = "Магазин «%s» не найден или для него не сохранён API ключ."
	textChoosePeriod      = "Выберите период отчёта:"
	textAskStartDate      = "Введите дату начала в формате YYYY-MM-DD:"
	textAskEndDate        = "Введите дату окончания в формате YYYY-MM-DD:"
	textEmptyDate         = "Дата не может быть пустой. Введите дату в формате YYYY-MM-DD:"
	textNoSalesData       = "Нет данных о продажах за выбранный период."
	textIncompleteData    = "Не удалось сформировать отчёт: в данных о продажах не хватает обязательных полей."
	textRateLimited       = "Слишком частые запросы отчёта по этому магазину. Попробуйте через минуту."
	textReportCredential  = "API ключ магазина «%s» недействителен. Добавьте магазин заново через /addshop."
	textReportFailed      = "Ошибка при получении отчёта. Попробуйте позже."

	labelToday     = "Сегодня"
	labelYesterday = "Вчера"
	labelLast7Days = "Последние 7 дней"
	labelCustom    = "Произвольный период"
	labelConfirm   = "Удалить"
	labelCancel    = "Отмена"
)
