package model

type ServerStats struct {
	CPU         float64 `json:"cpu" yaml:"cpu"`
	Memory      float64 `json:"memory" yaml:"memory"`
	Disk        float64 `json:"disk" yaml:"disk"`
	Network     float64 `json:"network" yaml:"network"`
	Uptime      string  `json:"uptime" yaml:"uptime"`
	ActiveUsers int     `json:"activeUsers" yaml:"activeUsers"`
	Requests    int     `json:"requests" yaml:"requests"`
	Errors      int     `json:"errors" yaml:"errors"`
}

type ChartPoint struct {
	Name     string `json:"name" yaml:"name"`
	CPU      int    `json:"cpu" yaml:"cpu"`
	Memory   int    `json:"memory" yaml:"memory"`
	Requests int    `json:"requests" yaml:"requests"`
}

type TrafficSlice struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
	Color string `json:"color" yaml:"color"`
}

type DashboardData struct {
	Source  string         `json:"source" yaml:"-"`
	Stats   ServerStats    `json:"stats" yaml:"stats"`
	Weekly  []ChartPoint   `json:"weekly" yaml:"weekly"`
	Traffic []TrafficSlice `json:"traffic" yaml:"traffic"`
}
