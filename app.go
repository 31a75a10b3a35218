package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/terracarve/engine/voxel"
	"github.com/memmaker/terracarve/game"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

type summary struct {
	Vertices           int               `yaml:"vertices"`
	Triangles          int               `yaml:"triangles"`
	Carves             []game.CarveEvent `yaml:"carves"`
	Ticks              int               `yaml:"ticks"`
	CollidersEnabled   int               `yaml:"colliders_enabled"`
	ColliderCount      int               `yaml:"collider_count"`
	QueueLength        int               `yaml:"queue_length"`
	ProcessedPerSecond int               `yaml:"processed_per_second"`
	ExtractMillis      float64           `yaml:"extract_avg_ms"`
	Outputs            map[string]string `yaml:"outputs,omitempty"`
}

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults when empty)")
	carveCount := flag.Int("carves", 8, "number of random carves to apply")
	carveSeed := flag.Int64("seed", 1, "seed for carve positions")
	replayPath := flag.String("replay", "", "carve log to replay before the random carves")
	ticks := flag.Int("ticks", 40, "scheduler ticks to simulate")
	tickDuration := flag.Duration("tick", 50*time.Millisecond, "simulated time per tick")
	meshOut := flag.String("mesh", "", "write the final mesh as .glb")
	logOut := flag.String("carvelog", "", "write the carve history as gzip NBT")
	flag.Parse()

	cfg, err := game.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()

	simulated := time.Unix(0, 0)
	clock := func() time.Time { return simulated }
	world := game.NewWorld(cfg, logger, prometheus.NewRegistry(), clock)
	logger.SystemInfo("field %v, initial mesh %d vertices", world.Terrain.Field(), world.Terrain.Mesh().VertexCount())

	if *replayPath != "" {
		events, err := game.LoadCarveLog(*replayPath)
		if err != nil {
			logger.IOError("%v", err)
			os.Exit(1)
		}
		logger.IOInfo("replayed %d of %d carves from %s", world.Terrain.Replay(events), len(events), *replayPath)
	}

	spawnColliders(world, cfg)

	rng := rand.New(rand.NewSource(*carveSeed))
	for i := 0; i < *carveCount; i++ {
		world.Carve(randomCarve(rng, world.Terrain.Field()), rng.Intn(3))
	}

	for i := 0; i < *ticks; i++ {
		simulated = simulated.Add(*tickDuration)
		world.Tick()
	}

	out := summary{
		Vertices:           world.Terrain.Mesh().VertexCount(),
		Triangles:          world.Terrain.Mesh().TriangleCount(),
		Carves:             world.Terrain.History(),
		Ticks:              world.Ticks(),
		CollidersEnabled:   world.Colliders.EnabledCount(),
		ColliderCount:      len(world.Colliders.Names()),
		QueueLength:        world.Scheduler.QueueLength(),
		ProcessedPerSecond: world.Scheduler.ProcessedPerSecond(),
		Outputs:            map[string]string{},
	}
	if state := world.Terrain.Timings().GetState("extract"); state != nil {
		out.ExtractMillis = state.AverageDuration()
	}

	if *meshOut != "" {
		if err := voxel.WriteGLB(world.Terrain.Mesh(), "terrain", *meshOut); err != nil {
			logger.IOError("%v", err)
		} else {
			out.Outputs["mesh"] = *meshOut
		}
	}
	if *logOut != "" {
		if err := game.SaveCarveLog(*logOut, world.Terrain.History()); err != nil {
			logger.IOError("%v", err)
		} else {
			out.Outputs["carvelog"] = *logOut
		}
	}

	printSummary(out, world.Terrain.Timings().String())
}

// spawnColliders scatters one rock collider per 4x4 column of cells.
func spawnColliders(world *game.World, cfg game.Config) {
	field := world.Terrain.Field()
	dims := field.CellDims()
	for z := int32(0); z < dims.Z; z += 4 {
		for x := int32(0); x < dims.X; x += 4 {
			name := fmt.Sprintf("rock-%d-%d", x, z)
			pos := field.NodePosition(x, 0, z).Add(mgl32.Vec3{0, float32(cfg.Noise.GroundHeight), 0})
			world.Colliders.Add(name, pos, mgl32.Vec3{1, 1, 1})
		}
	}
}

func randomCarve(rng *rand.Rand, field *voxel.Field) voxel.CarveRequest {
	size := field.Size()
	node := voxel.Int3{
		X: rng.Int31n(size.X),
		Y: rng.Int31n(size.Y),
		Z: rng.Int31n(size.Z),
	}
	return voxel.CarveRequest{
		Center: field.NodePosition(node.X, node.Y, node.Z),
		Radius: field.CellSize() * (1.5 + rng.Float32()*2.5),
	}
}

func printSummary(out summary, timings string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		_ = enc.Encode(out)
		_ = enc.Close()
		return
	}
	fmt.Printf("mesh: %d vertices, %d triangles\n", out.Vertices, out.Triangles)
	fmt.Printf("carves: %d\n", len(out.Carves))
	for _, c := range out.Carves {
		fmt.Printf("  #%d (%.1f, %.1f, %.1f) r=%.2f changed %d\n", c.Sequence, c.X, c.Y, c.Z, c.Radius, c.Changed)
	}
	fmt.Printf("colliders: %d/%d enabled after %d ticks, %d queued, %d/s\n", out.CollidersEnabled, out.ColliderCount, out.Ticks, out.QueueLength, out.ProcessedPerSecond)
	fmt.Println(timings)
	for kind, path := range out.Outputs {
		fmt.Printf("wrote %s: %s\n", kind, path)
	}
}
