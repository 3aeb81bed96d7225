package models

type CommandType string

const (
	CommandStart   CommandType = "/start"
	CommandHelp    CommandType = "/help"
	CommandAddShop CommandType = "/addshop"
	CommandDelShop CommandType = "/delshop"
	CommandShops   CommandType = "/shops"
	CommandReport  CommandType = "/report"
	CommandCancel  CommandType = "/cancel"
	CommandUnknown CommandType = "unknown"
)

type Command struct {
	Type     CommandType
	ChatID   int64
	UserID   int64
	Text     string
	Username string
}

func ParseCommandType(commandName string) CommandType {
	switch CommandType(commandName) {
	case CommandStart, CommandHelp, CommandAddShop, CommandDelShop, CommandShops, CommandReport, CommandCancel:
		return CommandType(commandName)
	default:
		return CommandUnknown
	}
}
