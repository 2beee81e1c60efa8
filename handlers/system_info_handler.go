package handlers

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/byteorem/banshee-bot/bot"
	"github.com/byteorem/banshee-bot/utils"
)

// HandleSystemInfo renders bot runtime and host statistics.
func HandleSystemInfo(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	cpuCount, _ := cpu.Counts(true)
	cpuPercent, _ := cpu.Percent(0, false)
	vm, _ := mem.VirtualMemory()
	hostInfo, _ := host.Info()

	cpuUsage := "n/a"
	if len(cpuPercent) > 0 {
		cpuUsage = fmt.Sprintf("%.1f%%", cpuPercent[0])
	}

	var dbSize int64
	if info, err := os.Stat(b.Config.DatabasePath); err == nil {
		dbSize = info.Size() / 1024
	}

	embed := &discordgo.MessageEmbed{
		Title: "Bot Info",
		Color: utils.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "OS", Value: fmt.Sprintf("%s %s", hostInfo.Platform, hostInfo.PlatformVersion), Inline: true},
			{Name: "Kernel", Value: hostInfo.KernelVersion, Inline: true},
			{Name: "Go Version", Value: runtime.Version(), Inline: true},
			{Name: "CPU Count", Value: fmt.Sprintf("%d", cpuCount), Inline: true},
			{Name: "CPU Usage", Value: cpuUsage, Inline: true},
			{Name: "Memory", Value: fmt.Sprintf("%.1f%% (%d MB / %d MB)", vm.UsedPercent, vm.Used/1024/1024, vm.Total/1024/1024), Inline: true},
			{Name: "Database Size", Value: fmt.Sprintf("%d KB", dbSize), Inline: true},
			{Name: "WebSocket Latency", Value: s.HeartbeatLatency().String(), Inline: true},
			{Name: "Goroutines", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
			{Name: "Guilds", Value: fmt.Sprintf("%d", len(s.State.Guilds)), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("System monitor - %s", time.Now().Format("15:04")),
		},
	}

	utils.RespondEmbed(s, i, embed)
}
