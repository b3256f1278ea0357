package main

import (
	"fmt"
	"strconv"

	"github.com/ZygmuntJakub/hearts/internal/config"
	"github.com/ZygmuntJakub/hearts/internal/engine"
	"github.com/pterm/pterm"
)

func printStandings(standings []engine.PlayerView, rounds int) error {
	data := pterm.TableData{{"Place", "Player", "Score"}}
	for i, p := range standings {
		data = append(data, []string{strconv.Itoa(i + 1), p.Name, strconv.Itoa(p.Score)})
	}
	pterm.DefaultSection.Println("Scores")
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	pterm.Success.Printfln("%s wins after %d rounds", pterm.LightCyan(standings[0].Name), rounds)
	return nil
}

type seatStats struct {
	names  []string
	wins   map[string]int
	points map[string]int
	rounds int
	games  int
}

func newSeatStats(conf *config.Config) *seatStats {
	s := &seatStats{wins: map[string]int{}, points: map[string]int{}}
	for _, p := range conf.Players {
		s.names = append(s.names, p.Name+" ("+p.Strategy+")")
	}
	return s
}

func (s *seatStats) add(standings []engine.PlayerView, rounds int) {
	s.games++
	s.rounds += rounds
	for _, p := range standings {
		label := s.names[p.Seat]
		s.points[label] += p.Score
		// shared lowest scores all count as wins
		if p.Score == standings[0].Score {
			s.wins[label]++
		}
	}
}

func printSimulation(s *seatStats) error {
	data := pterm.TableData{{"Seat", "Wins", "Avg score"}}
	for _, label := range s.names {
		avg := float64(s.points[label]) / float64(s.games)
		data = append(data, []string{label, strconv.Itoa(s.wins[label]), fmt.Sprintf("%.1f", avg)})
	}
	pterm.DefaultSection.Printfln("%d games, %.1f rounds per game", s.games, float64(s.rounds)/float64(s.games))
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
