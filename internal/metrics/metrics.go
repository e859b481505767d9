package metrics

const Namespace = "tasks"
