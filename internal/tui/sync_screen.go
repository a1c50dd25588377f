// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-expense-sync/internal/service"
	"github.com/MKhiriev/go-expense-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultRefreshInterval = 2 * time.Second
	statusMessageTTL       = 3 * time.Second
	pendingPreviewLimit    = 5
	timeLayout             = "2006-01-02 15:04:05"
)

type syncModel struct {
	ctx      context.Context
	services *service.ClientServices

	spinner      spinner.Model
	refreshEvery time.Duration
	copyText     func(string) error

	client     service.ClientStatus
	job        service.SyncJobStatus
	pending    []models.OfflineMutation
	online     bool
	lastBackup string

	running string
	status  string
	errMsg  string
}

func newSyncModel(ctx context.Context, services *service.ClientServices, refreshEvery time.Duration) syncModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	if refreshEvery <= 0 {
		refreshEvery = defaultRefreshInterval
	}

	return syncModel{
		ctx:          ctx,
		services:     services,
		spinner:      s,
		refreshEvery: refreshEvery,
		copyText:     clipboard.WriteAll,
	}
}

func (m syncModel) Init() tea.Cmd {
	return tea.Batch(m.cmdRefresh(), m.cmdScheduleRefresh())
}

func (m syncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshTickMsg:
		return m, tea.Batch(m.cmdRefresh(), m.cmdScheduleRefresh())
	case statusLoadedMsg:
		m.client = msg.client
		m.job = msg.job
		m.pending = msg.pending
		m.online = msg.err == nil
		if msg.queueErr != nil {
			m.errMsg = fmt.Sprintf("Ошибка чтения очереди: %v", msg.queueErr)
		}
		if msg.job.Sync != nil && msg.job.Sync.Backup != nil {
			m.lastBackup = msg.job.Sync.Backup.Name
		}
		return m, nil
	case replayDoneMsg:
		m.running = ""
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка отправки очереди: %s", humanizeServerUnavailableError(msg.err))
			return m, m.cmdRefresh()
		}
		m.status = fmt.Sprintf("Отправлено: %d, осталось: %d", msg.report.Synced, msg.report.Remaining)
		return m, tea.Batch(m.cmdRefresh(), clearStatusAfter(statusMessageTTL))
	case syncDoneMsg:
		m.running = ""
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка синхронизации: %s", humanizeServerUnavailableError(msg.err))
			return m, m.cmdRefresh()
		}
		if msg.result.Backup != nil {
			m.lastBackup = msg.result.Backup.Name
		}
		m.status = describeSyncResult(msg.result)
		return m, tea.Batch(m.cmdRefresh(), clearStatusAfter(statusMessageTTL))
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.running == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m syncModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.errMsg != "" {
		if key.Matches(msg, keys.dismiss) {
			m.errMsg = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.refresh):
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.copy):
		if m.lastBackup == "" {
			m.status = "Нечего копировать"
			return m, clearStatusAfter(statusMessageTTL)
		}
		if err := m.copyText(m.lastBackup); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Имя архива скопировано"
		return m, clearStatusAfter(statusMessageTTL)
	}

	if m.running != "" {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.replay):
		m.running = "Отправка очереди..."
		return m, tea.Batch(m.spinner.Tick, m.cmdReplay())
	case key.Matches(msg, keys.sync):
		m.running = "Синхронизация..."
		return m, tea.Batch(m.spinner.Tick, m.cmdSync(false))
	case key.Matches(msg, keys.forceSync):
		m.running = "Принудительная синхронизация..."
		return m, tea.Batch(m.spinner.Tick, m.cmdSync(true))
	}

	return m, nil
}

func (m syncModel) View() string {
	if m.errMsg != "" {
		return appStyle.Render(errorOverlayModel{message: m.errMsg}.View())
	}

	var b strings.Builder

	b.WriteString("Сервер: ")
	if m.online {
		b.WriteString(onlineStyle.Render("доступен"))
	} else {
		b.WriteString(offlineStyle.Render("недоступен"))
	}
	b.WriteString("\n")
	if m.client.Server.HasChangesSinceLastSync {
		b.WriteString("Изменения: есть несинхронизированные\n")
	} else {
		b.WriteString("Изменения: нет\n")
	}
	b.WriteString("Последняя синхронизация: ")
	b.WriteString(formatTime(m.lastSync()))
	b.WriteString("\n")
	b.WriteString("Последний архив: ")
	b.WriteString(orDash(m.lastBackup))
	b.WriteString("\n")
	if !m.job.At.IsZero() {
		b.WriteString("Фоновая проверка: ")
		b.WriteString(m.job.At.Local().Format(timeLayout))
		if m.job.Error != "" {
			b.WriteString(" (")
			b.WriteString(fitText(m.job.Error, 60))
			b.WriteString(")")
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\nОчередь: %d\n", len(m.pending)))
	for i, p := range m.pending {
		if i == pendingPreviewLimit {
			b.WriteString(fmt.Sprintf("  ... ещё %d\n", len(m.pending)-pendingPreviewLimit))
			break
		}
		line := fmt.Sprintf("  %s %s %s/%s", p.EnqueuedAt.Local().Format(timeLayout), p.Mutation.Op, p.Mutation.Entity, p.Mutation.RecordID)
		if p.LastError != "" {
			line += " ! " + p.LastError
		}
		b.WriteString(fitText(line, 72))
		b.WriteString("\n")
	}

	if m.running != "" {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.running)
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	hotKeys := helpStyle.Render("r: отправить очередь  s: синхронизировать  f: принудительно  c: копировать имя архива  u: обновить  v: версия  q: выход")
	return appStyle.Render(renderPage("СИНХРОНИЗАЦИЯ", b.String(), hotKeys))
}

func (m syncModel) lastSync() *time.Time {
	if m.job.LastSync != nil {
		return m.job.LastSync
	}
	return m.client.Server.LastSyncDate
}

func (m syncModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	services := m.services

	return func() tea.Msg {
		client, err := services.SyncService.Status(ctx)
		pending, queueErr := services.OfflineQueue.Pending(ctx)
		return statusLoadedMsg{
			client:   client,
			job:      services.SyncJob.Status(),
			pending:  pending,
			err:      err,
			queueErr: queueErr,
		}
	}
}

func (m syncModel) cmdScheduleRefresh() tea.Cmd {
	return tea.Tick(m.refreshEvery, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

func (m syncModel) cmdReplay() tea.Cmd {
	ctx := m.ctx
	queue := m.services.OfflineQueue

	return func() tea.Msg {
		report, err := queue.Replay(ctx)
		return replayDoneMsg{report: report, err: err}
	}
}

func (m syncModel) cmdSync(force bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SyncService

	return func() tea.Msg {
		result, err := svc.TriggerSync(ctx, models.SyncRequest{Force: force})
		return syncDoneMsg{result: result, err: err}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func describeSyncResult(result models.SyncResult) string {
	switch {
	case result.Skipped:
		return "Изменений нет, синхронизация пропущена"
	case result.Deferred:
		return "Хранилище недоступно, синхронизация отложена"
	case result.Synced:
		return fmt.Sprintf("Синхронизировано записей: %d", result.Records)
	}

	var failed []string
	for _, t := range result.Targets {
		if !t.OK {
			failed = append(failed, string(t.Target))
		}
	}
	return "Синхронизация завершилась с ошибками: " + strings.Join(failed, ", ")
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
