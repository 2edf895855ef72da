package importer

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// O export do TikTok Analytics não escapa quebras de linha dentro do
// título, então o arquivo não é um CSV válido. Cada vídeo começa em uma
// linha "rank,..." e o título se estende até a linha que carrega a data.
var (
	videoStartPattern = regexp.MustCompile(`^(\d+),(.*)`)
	datePattern       = regexp.MustCompile(`\d{2}/\d{2}/\d{2}`)
)

// Campos fixos no fim da linha de dados: data, vistas, likes, comentários,
// compartilhamentos, score e url
const videoTrailingFields = 7

// VideosFromCSV lê o export de vídeos do TikTok Analytics, reconstruindo
// títulos com múltiplas linhas
func VideosFromCSV(r io.Reader) ([]domain.Video, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lines := make([]string, 0)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler o arquivo de vídeos: %w", err)
	}

	videos := make([]domain.Video, 0)

	// Pular o cabeçalho
	i := 1
	for i < len(lines) {
		line := lines[i]
		if line == "" {
			i++
			continue
		}

		match := videoStartPattern.FindStringSubmatch(line)
		if match == nil {
			i++
			continue
		}

		rank, _ := strconv.Atoi(match[1])
		titleLines := make([]string, 0)
		currentLine := match[2]

		// Acumular o título até a linha que contém a data
		for !datePattern.MatchString(currentLine) && i < len(lines)-1 {
			titleLines = append(titleLines, currentLine)
			i++
			currentLine = lines[i]
		}

		parts := strings.Split(currentLine, ",")
		if len(parts) >= videoTrailingFields+1 {
			titlePart := strings.Join(parts[:len(parts)-videoTrailingFields], ",")
			titleLines = append(titleLines, titlePart)

			videos = append(videos, domain.Video{
				Rank:        rank,
				Title:       strings.TrimSpace(strings.Join(titleLines, "\n")),
				PublishedAt: parseShortDate(parts[len(parts)-7]),
				Views:       parseCount(parts[len(parts)-6]),
				Likes:       parseCount(parts[len(parts)-5]),
				Comments:    parseCount(parts[len(parts)-4]),
				Shares:      parseCount(parts[len(parts)-3]),
				Score:       parseCount(parts[len(parts)-2]),
				URL:         parts[len(parts)-1],
			})
		}

		i++
	}

	return videos, nil
}

// parseShortDate converte uma data DD/MM/YY
func parseShortDate(raw string) time.Time {
	parts := strings.Split(strings.TrimSpace(raw), "/")
	if len(parts) != 3 {
		return time.Time{}
	}

	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])

	if day == 0 || month == 0 {
		return time.Time{}
	}

	return time.Date(2000+year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func parseCount(raw string) int {
	count, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || count < 0 {
		return 0
	}
	return count
}
