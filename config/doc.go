// Package config loads the mazebench configuration.
//
// Sources, later ones winning:
//
//  1. Default(): 10×10 backtracking maze, γ=0.9, living reward −0.01,
//     noise 0.2, θ=1e-4, initial value 0, goal reward 10, info/text logs.
//  2. A YAML file (Load path, or Parse). Unknown keys are errors.
//  3. .env files (godotenv), which never override the real environment.
//  4. MAZEBENCH_* environment variables:
//
//     LOG_LEVEL LOG_FORMAT GENERATOR ROWS COLS SEED
//     DISCOUNT LIVING_REWARD NOISE THETA MAX_ITERATIONS
//     INITIAL_VALUE GOAL_REWARD
//     EVAL_SIZES EVAL_SEEDS (comma-separated) EVAL_PATHFINDING EVAL_MDP
//     OUT_DIR
//
// Every error wraps ErrInvalidConfig except file-system failures.
package config
