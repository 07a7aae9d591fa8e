package bot

import (
	tele "gopkg.in/telebot.v4"
)

// telegramSender delivers broadcast messages through the live bot connection.
// Broadcast sends bypass the async dispatcher on purpose: the scheduler needs
// the per-recipient outcome synchronously to build its cycle report.
type telegramSender struct {
	bot *tele.Bot
}

func (s *telegramSender) SendText(chatID int64, text string) error {
	_, err := s.bot.Send(tele.ChatID(chatID), text)
	return err
}

func (s *telegramSender) SendPhoto(chatID int64, path string) error {
	photo := &tele.Photo{File: tele.FromDisk(path)}
	_, err := s.bot.Send(tele.ChatID(chatID), photo)
	return err
}
