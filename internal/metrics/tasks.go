package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTasksCreated         = "tasks_created_total"
	NameTasksDeleted         = "tasks_deleted_total"
	NameTaskTransitions      = "task_transitions_total"
	NameTaskPolicyRejections = "task_policy_rejections_total"

	LabelFrom = "from"
	LabelTo   = "to"
)

var TasksCreated = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTasksCreated,
		Help:      "Total created tasks",
		Namespace: Namespace,
	},
)

var TasksDeleted = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTasksDeleted,
		Help:      "Total deleted tasks",
		Namespace: Namespace,
	},
)

var TaskTransitions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameTaskTransitions,
		Help:      "Total task status transitions",
		Namespace: Namespace,
	},
	[]string{LabelFrom, LabelTo},
)

var TaskPolicyRejections = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTaskPolicyRejections,
		Help:      "Total status transitions rejected by the task lifecycle",
		Namespace: Namespace,
	},
)
