package sqlinline

const QCreateJobsTable = `--sql f50c789a-60c0-44da-b92c-71c294f39aa8
create table if not exists jobs (
  id                 serial primary key,
  status             text not null default 'pending',
  prompt             text not null,
  model              text,
  preset             text,
  duration_sec       integer not null,
  format             text not null,
  seed               integer,
  generation_params  jsonb,
  quality_params     jsonb,
  audio_url          text,
  selected_candidate integer,
  error              text,
  created_at         timestamptz not null default now(),
  started_at         timestamptz,
  finished_at        timestamptz
);`

const QInsertJob = `--sql f3cf6170-8c56-44cd-b403-05bfe29c5d64
insert into jobs (
  status, prompt, model, preset, duration_sec, format, seed,
  generation_params, quality_params, audio_url, selected_candidate, error
)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
returning id, status, prompt, model, preset, duration_sec, format, seed,
  generation_params, quality_params, audio_url, selected_candidate, error,
  created_at, started_at, finished_at;`

const QSelectJob = `--sql 2946399e-6d10-4d76-98cd-290bc1c2c0f9
select id, status, prompt, model, preset, duration_sec, format, seed,
  generation_params, quality_params, audio_url, selected_candidate, error,
  created_at, started_at, finished_at
from jobs
where id = $1;`

const QSelectJobs = `--sql e021480f-102a-4cf7-b205-e3a17d74e138
select id, status, prompt, model, preset, duration_sec, format, seed,
  generation_params, quality_params, audio_url, selected_candidate, error,
  created_at, started_at, finished_at
from jobs
order by created_at desc, id desc;`

const QUpdateJob = `--sql e7d8cf38-770f-443d-b566-cca88cbda2cc
update jobs
set status             = coalesce($2, status),
    prompt             = coalesce($3, prompt),
    model              = coalesce($4, model),
    preset             = coalesce($5, preset),
    duration_sec       = coalesce($6, duration_sec),
    format             = coalesce($7, format),
    seed               = coalesce($8, seed),
    generation_params  = coalesce($9, generation_params),
    quality_params     = coalesce($10, quality_params),
    audio_url          = coalesce($11, audio_url),
    selected_candidate = coalesce($12, selected_candidate),
    error              = coalesce($13, error),
    started_at         = coalesce($14, started_at),
    finished_at        = coalesce($15, finished_at)
where id = $1
returning id, status, prompt, model, preset, duration_sec, format, seed,
  generation_params, quality_params, audio_url, selected_candidate, error,
  created_at, started_at, finished_at;`

const QPing = `--sql 53c0a73d-f94d-459b-b4a1-99bf174242b9
select 1;`
